// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	authdomain "movie_backend/internal/feature/auth/domain"
	catalogdomain "movie_backend/internal/feature/catalog/domain"
	"movie_backend/internal/feature/watchlist/domain"
	"movie_backend/internal/feature/watchlist/domain/entity"
	"movie_backend/internal/feature/watchlist/transport/http/dto"
	jwtmw "movie_backend/internal/platform/jwt"
)

// ListUsecase はリストメンバーシップ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ListUsecase interface {
	Add(ctx context.Context, userID uint, kind entity.ListKind, movieID int) error
	Remove(ctx context.Context, userID uint, kind entity.ListKind, movieID int) error
	List(ctx context.Context, userID uint, kind entity.ListKind) ([]entity.ListEntry, error)
}

// ListHandler はお気に入り・ウォッチリストのHTTPリクエストを処理します。
type ListHandler struct {
	uc ListUsecase
}

// NewListHandler は指定されたusecaseでListHandlerの新しいインスタンスを生成します。
func NewListHandler(uc ListUsecase) *ListHandler {
	return &ListHandler{uc: uc}
}

// AddFavorite は POST /movies/favorites/:id を処理します。
func (h *ListHandler) AddFavorite(c *gin.Context) {
	h.add(c, entity.KindFavorites)
}

// RemoveFavorite は DELETE /movies/favorites/:id を処理します。
func (h *ListHandler) RemoveFavorite(c *gin.Context) {
	h.remove(c, entity.KindFavorites)
}

// AddWatchlist は POST /movies/watchlist/:id を処理します。
func (h *ListHandler) AddWatchlist(c *gin.Context) {
	h.add(c, entity.KindWatchlist)
}

// RemoveWatchlist は DELETE /movies/watchlist/:id を処理します。
func (h *ListHandler) RemoveWatchlist(c *gin.Context) {
	h.remove(c, entity.KindWatchlist)
}

// Favorites は GET /users/favorites を処理します。
func (h *ListHandler) Favorites(c *gin.Context) {
	entries, ok := h.list(c, entity.KindFavorites)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FavoritesResponse{Favorites: entries})
}

// Watchlist は GET /users/watchlist を処理します。
func (h *ListHandler) Watchlist(c *gin.Context) {
	entries, ok := h.list(c, entity.KindWatchlist)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.WatchlistResponse{Watchlist: entries})
}

// movieID は:idパスパラメータを解釈します。
func movieID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid movie id"})
		return 0, false
	}
	return id, true
}

// add は追加操作の共通処理です。
// 重複追加は400、スナップショット取得失敗は502に写像されます。
func (h *ListHandler) add(c *gin.Context, kind entity.ListKind) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := movieID(c)
	if !ok {
		return
	}

	if err := h.uc.Add(c.Request.Context(), userID, kind, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyInList):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("Movie already in %s", kind)})
		case errors.Is(err, catalogdomain.ErrUpstream):
			slog.Warn("snapshot fetch failed", "error", err, "movie_id", id, "user_id", userID)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: catalogdomain.ErrUpstream.Error()})
		case errors.Is(err, authdomain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
		default:
			slog.Error("list add failed", "error", err, "kind", kind, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fmt.Sprintf("Failed to add to %s", kind)})
		}
		return
	}

	slog.Info("movie added to list", "kind", kind, "movie_id", id, "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("Movie added to %s", kind)})
}

// remove は削除操作の共通処理です。対象が存在しなくても成功を返します。
func (h *ListHandler) remove(c *gin.Context, kind entity.ListKind) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := movieID(c)
	if !ok {
		return
	}

	if err := h.uc.Remove(c.Request.Context(), userID, kind, id); err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}
		slog.Error("list remove failed", "error", err, "kind", kind, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fmt.Sprintf("Failed to remove from %s", kind)})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("Movie removed from %s", kind)})
}

// list は一覧取得の共通処理です。
func (h *ListHandler) list(c *gin.Context, kind entity.ListKind) ([]entity.ListEntry, bool) {
	userID := c.GetUint(jwtmw.ContextUserID)

	entries, err := h.uc.List(c.Request.Context(), userID, kind)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return nil, false
		}
		slog.Error("list fetch failed", "error", err, "kind", kind, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fmt.Sprintf("Failed to fetch %s", kind)})
		return nil, false
	}
	if entries == nil {
		entries = []entity.ListEntry{}
	}
	return entries, true
}
