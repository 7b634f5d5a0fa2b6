// Package dto defines response envelopes for the catalog feature's HTTP transport layer.
package dto

import "movie_backend/internal/feature/catalog/domain/entity"

// ResultsResponse wraps a paged movie list. The paging fields are flattened
// next to the results, matching the provider's envelope.
type ResultsResponse struct {
	Page         int            `json:"page,omitempty"`
	Results      []entity.Movie `json:"results"`
	TotalPages   int            `json:"total_pages,omitempty"`
	TotalResults int            `json:"total_results,omitempty"`
}

// MovieResponse wraps a single movie detail.
type MovieResponse struct {
	Movie *entity.MovieDetail `json:"movie"`
}

// GenresResponse wraps the genre list.
type GenresResponse struct {
	Genres []entity.Genre `json:"genres"`
}
