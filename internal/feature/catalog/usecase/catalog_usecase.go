// Package usecase implements the catalog feature's business logic.
package usecase

import (
	"context"
	"strings"

	"movie_backend/internal/feature/catalog/domain"
	"movie_backend/internal/feature/catalog/domain/entity"
)

// CatalogRepository abstracts the external metadata provider.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters/tmdb). The caching decorator in
// platform/cache wraps this same interface.
type CatalogRepository interface {
	Trending(ctx context.Context) (*entity.Page, error)
	Popular(ctx context.Context, page int) (*entity.Page, error)
	TopRated(ctx context.Context, page int) (*entity.Page, error)
	Search(ctx context.Context, query string, page int) (*entity.Page, error)
	ByGenre(ctx context.Context, genreID, page int) (*entity.Page, error)
	Details(ctx context.Context, id int) (*entity.MovieDetail, error)
	Genres(ctx context.Context) ([]entity.Genre, error)
}

// catalogUsecase proxies read-only catalog queries to the repository.
// It holds no state; error normalization happens in the adapter.
type catalogUsecase struct {
	catalog CatalogRepository
}

// NewCatalogUsecase creates a new catalogUsecase instance.
func NewCatalogUsecase(catalog CatalogRepository) *catalogUsecase {
	return &catalogUsecase{catalog: catalog}
}

// Trending returns this week's trending movies.
func (u *catalogUsecase) Trending(ctx context.Context) (*entity.Page, error) {
	return u.catalog.Trending(ctx)
}

// Popular returns a page of popular movies.
func (u *catalogUsecase) Popular(ctx context.Context, page int) (*entity.Page, error) {
	return u.catalog.Popular(ctx, page)
}

// TopRated returns a page of top rated movies.
func (u *catalogUsecase) TopRated(ctx context.Context, page int) (*entity.Page, error) {
	return u.catalog.TopRated(ctx, page)
}

// Search searches movies by title. A blank query fails with
// domain.ErrEmptyQuery before any upstream call is made.
func (u *catalogUsecase) Search(ctx context.Context, query string, page int) (*entity.Page, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	return u.catalog.Search(ctx, query, page)
}

// ByGenre returns a page of movies tagged with the given genre.
func (u *catalogUsecase) ByGenre(ctx context.Context, genreID, page int) (*entity.Page, error) {
	return u.catalog.ByGenre(ctx, genreID, page)
}

// Details returns the full detail view of a single movie.
func (u *catalogUsecase) Details(ctx context.Context, id int) (*entity.MovieDetail, error) {
	return u.catalog.Details(ctx, id)
}

// Genres returns the provider's genre list.
func (u *catalogUsecase) Genres(ctx context.Context) ([]entity.Genre, error) {
	return u.catalog.Genres(ctx)
}
