package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"movie_backend/internal/feature/catalog/domain"
	"movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/catalog/usecase"
)

// TMDBCatalog はTMDB外部APIから映画メタデータを取得するCatalogRepository実装です。
// 状態を持たず、キャッシュも行いません。リトライは呼び出し側の判断です。
type TMDBCatalog struct {
	cfg    Config
	client *http.Client
}

// TMDBCatalogがCatalogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogRepository = (*TMDBCatalog)(nil)

// NewTMDBCatalog は指定された設定とHTTPクライアントでTMDBCatalogの新しいインスタンスを生成します。
// クライアントのTimeoutにはcfg.Timeoutを設定してください。
func NewTMDBCatalog(cfg Config, client *http.Client) *TMDBCatalog {
	return &TMDBCatalog{cfg: cfg, client: client}
}

// get は指定されたパスに対してGETリクエストを実行し、レスポンスをoutにデコードします。
// タイムアウト・非2xxレスポンス・不正なペイロードはすべてdomain.ErrUpstreamに正規化されます。
func (t *TMDBCatalog) get(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	// APIキーをクエリパラメータとして付与
	q.Set("api_key", t.cfg.APIKey)

	u := fmt.Sprintf("%s%s?%s", t.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	res, err := t.client.Do(req)
	if err != nil {
		// タイムアウトを含むトランスポートレベルの失敗
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: tmdb http %d", domain.ErrUpstream, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrUpstream, err)
	}
	return nil
}

// Trending は週間トレンドの映画リストを取得します。
func (t *TMDBCatalog) Trending(ctx context.Context) (*entity.Page, error) {
	var page entity.Page
	if err := t.get(ctx, "/trending/movie/week", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Popular は人気映画のページを取得します。
func (t *TMDBCatalog) Popular(ctx context.Context, page int) (*entity.Page, error) {
	return t.pagedList(ctx, "/movie/popular", page, nil)
}

// TopRated は高評価映画のページを取得します。
func (t *TMDBCatalog) TopRated(ctx context.Context, page int) (*entity.Page, error) {
	return t.pagedList(ctx, "/movie/top_rated", page, nil)
}

// Search はタイトルで映画を検索します。クエリの検証はusecase側で行われます。
func (t *TMDBCatalog) Search(ctx context.Context, query string, page int) (*entity.Page, error) {
	q := url.Values{}
	q.Set("query", query)
	return t.pagedList(ctx, "/search/movie", page, q)
}

// ByGenre は指定ジャンルの映画のページを取得します。
func (t *TMDBCatalog) ByGenre(ctx context.Context, genreID, page int) (*entity.Page, error) {
	q := url.Values{}
	q.Set("with_genres", strconv.Itoa(genreID))
	return t.pagedList(ctx, "/discover/movie", page, q)
}

// Details は単一映画の詳細を取得します。
// クレジット・動画・類似作品・レビューをappend_to_responseでまとめて取得します。
func (t *TMDBCatalog) Details(ctx context.Context, id int) (*entity.MovieDetail, error) {
	q := url.Values{}
	q.Set("append_to_response", "credits,videos,similar,reviews")

	var detail entity.MovieDetail
	if err := t.get(ctx, fmt.Sprintf("/movie/%d", id), q, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Genres はジャンル一覧を取得します。
func (t *TMDBCatalog) Genres(ctx context.Context) ([]entity.Genre, error) {
	var body struct {
		Genres []entity.Genre `json:"genres"`
	}
	if err := t.get(ctx, "/genre/movie/list", nil, &body); err != nil {
		return nil, err
	}
	return body.Genres, nil
}

// pagedList はページ番号付きのリストエンドポイント共通処理です。
func (t *TMDBCatalog) pagedList(ctx context.Context, path string, page int, q url.Values) (*entity.Page, error) {
	if q == nil {
		q = url.Values{}
	}
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))

	var out entity.Page
	if err := t.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
