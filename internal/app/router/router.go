// Package router assembles the Gin engine and the route table.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"movie_backend/internal/api"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	cataloghandler "movie_backend/internal/feature/catalog/transport/handler"
	profilehandler "movie_backend/internal/feature/profile/transport/handler"
	watchlisthandler "movie_backend/internal/feature/watchlist/transport/handler"
	platformhandler "movie_backend/internal/platform/http/handler"
	jwtmw "movie_backend/internal/platform/jwt"
	"movie_backend/internal/shared/ratelimiter"
)

// NewRouter builds the engine with all routes and middleware wired in.
// allowedOrigins is the explicit CORS allow-list; there is no wildcard.
func NewRouter(
	authHandler *authhandler.AuthHandler,
	profileHandler *profilehandler.ProfileHandler,
	catalogHandler *cataloghandler.CatalogHandler,
	listHandler *watchlisthandler.ListHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.Default()

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(ratelimiter.Middleware(rate.NewLimiter(50, 100)))

	// 未知のルートは404のJSONエンベロープで返す
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Route not found"})
	})

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/auth/register", authHandler.Register)
	// ログイン（トークン発行）
	r.POST("/auth/login", authHandler.Login)

	// カタログ読み取りは認証不要（アップストリームへの素通し）
	movies := r.Group("/movies")
	{
		movies.GET("/trending", catalogHandler.Trending)
		movies.GET("/popular", catalogHandler.Popular)
		movies.GET("/top-rated", catalogHandler.TopRated)
		movies.GET("/search", catalogHandler.Search)
		movies.GET("/details/:id", catalogHandler.Details)
		movies.GET("/genres", catalogHandler.Genres)
		movies.GET("/genre/:id", catalogHandler.ByGenre)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにベアラートークンが必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/auth/me", authHandler.Me)

		auth.GET("/users/profile", profileHandler.Get)
		auth.PUT("/users/profile", profileHandler.Update)
		auth.GET("/users/favorites", listHandler.Favorites)
		auth.GET("/users/watchlist", listHandler.Watchlist)

		auth.POST("/movies/favorites/:id", listHandler.AddFavorite)
		auth.DELETE("/movies/favorites/:id", listHandler.RemoveFavorite)
		auth.POST("/movies/watchlist/:id", listHandler.AddWatchlist)
		auth.DELETE("/movies/watchlist/:id", listHandler.RemoveWatchlist)
	}

	return r
}
