// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"movie_backend/internal/feature/auth/domain"
	"movie_backend/internal/feature/auth/domain/entity"
	"movie_backend/internal/feature/auth/usecase"
)

// userPostgres はUserRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// conflictColumn はユニーク制約違反のエラーから衝突したカラムを特定します。
// PostgreSQLエラー23505（unique_violation）とテスト用SQLiteの両方に対応します。
func conflictColumn(err error) (string, bool) {
	var pgErr *pgconn.PgError
	unique := errors.As(err, &pgErr) && pgErr.Code == "23505"
	if !unique && !strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return "", false
	}
	if strings.Contains(err.Error(), "username") {
		return "username", true
	}
	return "email", true
}

// Create はユーザーをデータベースに追加します。
// ユニーク制約に違反した場合、衝突したカラムに応じて
// domain.ErrUsernameTaken または domain.ErrEmailTaken を返します。
// 事前チェックとの間で競合したINSERTも同じエラーに正規化されます。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if col, ok := conflictColumn(err); ok {
			if col == "username" {
				return domain.ErrUsernameTaken
			}
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail は小文字化済みメールアドレスでユーザーを取得します。
// メールは常に小文字で保存されるため、等値比較で十分です。
// ユーザーが存在しない場合、domain.ErrUserNotFound を返します。
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByUsernameFold はユーザー名に大文字小文字を区別せず一致するユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFound を返します。
func (r *userPostgres) FindByUsernameFold(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFound を返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Save はユーザーの変更を永続化します（プロフィール更新用）。
// ユニーク制約に違反した場合はCreateと同じ衝突エラーを返します。
func (r *userPostgres) Save(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if col, ok := conflictColumn(err); ok {
			if col == "username" {
				return domain.ErrUsernameTaken
			}
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}
