// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/catalog/domain"
	"movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase はカタログ読み取り操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	Trending(ctx context.Context) (*entity.Page, error)
	Popular(ctx context.Context, page int) (*entity.Page, error)
	TopRated(ctx context.Context, page int) (*entity.Page, error)
	Search(ctx context.Context, query string, page int) (*entity.Page, error)
	ByGenre(ctx context.Context, genreID, page int) (*entity.Page, error)
	Details(ctx context.Context, id int) (*entity.MovieDetail, error)
	Genres(ctx context.Context) ([]entity.Genre, error)
}

// CatalogHandler はカタログ読み取りのHTTPリクエストを処理します。
// 認証不要のエンドポイント群で、アップストリーム障害は502に写像されます。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は指定されたusecaseでCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// pageQuery は?page=クエリパラメータを解釈します。未指定・不正値は1ページ目。
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// respondPage はページ取得の共通レスポンス処理です。
func respondPage(c *gin.Context, page *entity.Page, err error) {
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ResultsResponse{
		Page:         page.Page,
		Results:      page.Results,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	})
}

// upstreamError はエラーを適切なステータスコードに写像します。
func upstreamError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUpstream) {
		slog.Warn("catalog upstream failure", "error", err, "path", c.FullPath())
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: domain.ErrUpstream.Error()})
		return
	}
	slog.Error("catalog request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server error"})
}

// Trending は GET /movies/trending を処理します。
func (h *CatalogHandler) Trending(c *gin.Context) {
	page, err := h.uc.Trending(c.Request.Context())
	respondPage(c, page, err)
}

// Popular は GET /movies/popular?page= を処理します。
func (h *CatalogHandler) Popular(c *gin.Context) {
	page, err := h.uc.Popular(c.Request.Context(), pageQuery(c))
	respondPage(c, page, err)
}

// TopRated は GET /movies/top-rated?page= を処理します。
func (h *CatalogHandler) TopRated(c *gin.Context) {
	page, err := h.uc.TopRated(c.Request.Context(), pageQuery(c))
	respondPage(c, page, err)
}

// Search は GET /movies/search?query=&page= を処理します。
// クエリが空の場合は400を返却します。
func (h *CatalogHandler) Search(c *gin.Context) {
	page, err := h.uc.Search(c.Request.Context(), c.Query("query"), pageQuery(c))
	if errors.Is(err, domain.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: domain.ErrEmptyQuery.Error()})
		return
	}
	respondPage(c, page, err)
}

// ByGenre は GET /movies/genre/:id?page= を処理します。
func (h *CatalogHandler) ByGenre(c *gin.Context) {
	genreID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid genre id"})
		return
	}
	page, err := h.uc.ByGenre(c.Request.Context(), genreID, pageQuery(c))
	respondPage(c, page, err)
}

// Details は GET /movies/details/:id を処理します。
func (h *CatalogHandler) Details(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid movie id"})
		return
	}

	detail, err := h.uc.Details(c.Request.Context(), id)
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MovieResponse{Movie: detail})
}

// Genres は GET /movies/genres を処理します。
func (h *CatalogHandler) Genres(c *gin.Context) {
	genres, err := h.uc.Genres(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GenresResponse{Genres: genres})
}
