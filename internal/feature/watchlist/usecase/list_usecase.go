// Package usecase はwatchlistフィーチャー（お気に入り・ウォッチリスト両方）の
// ビジネスロジックを実装します。
package usecase

import (
	"context"

	authentity "movie_backend/internal/feature/auth/domain/entity"
	catalogentity "movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/watchlist/domain"
	"movie_backend/internal/feature/watchlist/domain/entity"
)

// ListRepository はリストエントリの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type ListRepository interface {
	// Insert はエントリを追加します。(user, kind, movie)が既に存在する場合、
	// domain.ErrAlreadyInList を返します（ユニーク制約による競合も含む）。
	Insert(ctx context.Context, e *entity.ListEntry) error

	// Delete はエントリを削除します。存在しない場合もエラーにはなりません。
	Delete(ctx context.Context, userID uint, kind entity.ListKind, movieID int) error

	// Exists はエントリの有無を返します。
	Exists(ctx context.Context, userID uint, kind entity.ListKind, movieID int) (bool, error)

	// List は指定ユーザー・種別のすべてのエントリを返します。
	List(ctx context.Context, userID uint, kind entity.ListKind) ([]entity.ListEntry, error)
}

// SnapshotSource は追加時のスナップショット取得元（カタログゲートウェイ）を抽象化します。
type SnapshotSource interface {
	// Details はカタログアイテムの詳細を取得します。
	Details(ctx context.Context, id int) (*catalogentity.MovieDetail, error)
}

// UserFinder はトークンのIDが実在するアカウントに解決できることを確認するために使います。
type UserFinder interface {
	// FindByID は指定IDのユーザーを取得します。存在しない場合、
	// authdomain.ErrUserNotFound を返します。
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// listUsecase はリストメンバーシップ操作を実装します。
// (account, kind, movieID)ごとの状態は absent / present の2つだけです。
type listUsecase struct {
	entries ListRepository
	catalog SnapshotSource
	users   UserFinder
}

// NewListUsecase はlistUsecaseの新しいインスタンスを生成します。
func NewListUsecase(entries ListRepository, catalog SnapshotSource, users UserFinder) *listUsecase {
	return &listUsecase{entries: entries, catalog: catalog, users: users}
}

// Add は映画をリストに追加します（absent → present）。
//
// 既に存在する場合は domain.ErrAlreadyInList を返します（何も変更しない）。
// スナップショット取得が失敗した場合は何もコミットされません:
// タイトル・ポスター欠落の部分エントリは禁止されています。
func (u *listUsecase) Add(ctx context.Context, userID uint, kind entity.ListKind, movieID int) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return err
	}

	// 先にメンバーシップを確認し、重複時はアップストリーム呼び出し自体を省く
	exists, err := u.entries.Exists(ctx, userID, kind, movieID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyInList
	}

	// スナップショットを取得（失敗時はUpstreamエラーがそのまま伝播する）
	detail, err := u.catalog.Details(ctx, movieID)
	if err != nil {
		return err
	}

	entry := &entity.ListEntry{
		UserID:     userID,
		Kind:       kind,
		MovieID:    detail.ID,
		Title:      detail.Title,
		PosterPath: detail.PosterPath,
	}
	// 確認とINSERTの間で競合した場合、アダプタが同じ衝突エラーを返す
	return u.entries.Insert(ctx, entry)
}

// Remove は映画をリストから削除します（present → absent）。
// 存在しないエントリの削除も成功として扱います（冪等な削除セマンティクス）。
func (u *listUsecase) Remove(ctx context.Context, userID uint, kind entity.ListKind, movieID int) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return u.entries.Delete(ctx, userID, kind, movieID)
}

// List は指定ユーザー・種別のすべてのエントリを返します。
// 並び順は契約外で、表示順序はクライアントの責務です。
func (u *listUsecase) List(ctx context.Context, userID uint, kind entity.ListKind) ([]entity.ListEntry, error) {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.entries.List(ctx, userID, kind)
}
