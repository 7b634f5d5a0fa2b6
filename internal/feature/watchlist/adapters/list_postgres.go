// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"movie_backend/internal/feature/watchlist/domain"
	"movie_backend/internal/feature/watchlist/domain/entity"
	"movie_backend/internal/feature/watchlist/usecase"
)

// listPostgres はListRepositoryインターフェースのPostgreSQL実装です。
type listPostgres struct {
	db *gorm.DB
}

// listPostgresがListRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ListRepository = (*listPostgres)(nil)

// NewListPostgres は指定されたDB接続でlistPostgresの新しいインスタンスを生成します。
func NewListPostgres(db *gorm.DB) *listPostgres {
	return &listPostgres{db: db}
}

// isUniqueViolation はユニーク制約違反かどうかを判定します。
// PostgreSQLエラー23505（unique_violation）とテスト用SQLiteの両方に対応します。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Insert はエントリを追加します。
// (user_id, kind, movie_id)の複合ユニークindexに違反した場合、
// domain.ErrAlreadyInList を返します。同時追加の競合の敗者も同じエラーを受け取ります。
func (r *listPostgres) Insert(ctx context.Context, e *entity.ListEntry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyInList
		}
		return err
	}
	return nil
}

// Delete はエントリを削除します。対象が存在しない場合も成功として扱います。
func (r *listPostgres) Delete(ctx context.Context, userID uint, kind entity.ListKind, movieID int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND movie_id = ?", userID, kind, movieID).
		Delete(&entity.ListEntry{}).Error
}

// Exists はエントリの有無を返します。
func (r *listPostgres) Exists(ctx context.Context, userID uint, kind entity.ListKind, movieID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ListEntry{}).
		Where("user_id = ? AND kind = ? AND movie_id = ?", userID, kind, movieID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List は指定ユーザー・種別のすべてのエントリを返します。
func (r *listPostgres) List(ctx context.Context, userID uint, kind entity.ListKind) ([]entity.ListEntry, error) {
	var entries []entity.ListEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
