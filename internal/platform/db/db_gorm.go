// Package db opens the GORM database connection used by the repositories.
package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "movie_backend/internal/feature/auth/domain/entity"
	watchlistentity "movie_backend/internal/feature/watchlist/domain/entity"
	"movie_backend/internal/platform/config"
)

// OpenDB connects to PostgreSQL, retrying until the database accepts
// connections or a 60 second deadline passes. コンテナ起動直後はDBが
// まだ受け付けないことがあるためリトライします。
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, ListEntry）
		if err := db.AutoMigrate(
			&authentity.User{},
			&watchlistentity.ListEntry{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
