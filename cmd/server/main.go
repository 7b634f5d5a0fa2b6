package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"movie_backend/internal/app/router"
	authadapters "movie_backend/internal/feature/auth/adapters"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	authusecase "movie_backend/internal/feature/auth/usecase"
	"movie_backend/internal/feature/catalog/adapters/tmdb"
	cataloghandler "movie_backend/internal/feature/catalog/transport/handler"
	catalogusecase "movie_backend/internal/feature/catalog/usecase"
	profilehandler "movie_backend/internal/feature/profile/transport/handler"
	profileusecase "movie_backend/internal/feature/profile/usecase"
	watchlistadapters "movie_backend/internal/feature/watchlist/adapters"
	watchlisthandler "movie_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "movie_backend/internal/feature/watchlist/usecase"
	"movie_backend/internal/platform/cache"
	"movie_backend/internal/platform/config"
	infradb "movie_backend/internal/platform/db"
	jwtmw "movie_backend/internal/platform/jwt"
	infraredis "movie_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	// 開発中の注意喚起
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	tmdbCfg := tmdb.LoadConfig()
	if tmdbCfg.APIKey == "" {
		log.Println("[WARN] TMDB_API_KEY is not set. Catalog requests will fail upstream.")
	}

	// db
	db := infradb.OpenDB(cfg.DB)

	// Redis（未設定・接続不可の場合はキャッシュなしで動作する）
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			log.Println("[WARN] Redis unavailable. Running without catalog cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	listRepo := watchlistadapters.NewListPostgres(db)
	tmdbRepo := tmdb.NewTMDBCatalog(tmdbCfg, &http.Client{Timeout: tmdbCfg.Timeout})

	// Redisキャッシュでラップ（詳細・ジャンルのみ、リストは素通し）
	cachedCatalog := cache.NewCachingCatalogRepository(rdb, 12*time.Hour, tmdbRepo, "catalog")

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, jwtmw.DefaultExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	profileUC := profileusecase.NewProfileUsecase(userRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(cachedCatalog)
	listUC := watchlistusecase.NewListUsecase(listRepo, cachedCatalog, userRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	profileH := profilehandler.NewProfileHandler(profileUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	listH := watchlisthandler.NewListHandler(listUC)

	// ルータ生成
	r := router.NewRouter(authH, profileH, catalogH, listH, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// SIGINT/SIGTERMでグレースフルシャットダウン
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ERROR] Server shutdown:", err)
	}
}
