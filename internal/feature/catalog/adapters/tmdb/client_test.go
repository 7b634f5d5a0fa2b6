package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie_backend/internal/feature/catalog/domain"
)

func TestNewTMDBCatalog(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: "https://api.test.com",
		Timeout: 5 * time.Second,
	}
	client := &http.Client{}

	catalog := NewTMDBCatalog(cfg, client)

	if catalog == nil {
		t.Fatal("expected non-nil catalog")
	}
	if catalog.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, catalog.cfg.APIKey)
	}
}

func TestTMDBCatalog_Trending_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request path and parameters
		if r.URL.Path != "/trending/movie/week" {
			t.Errorf("expected path /trending/movie/week, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("expected api_key test-key, got %s", r.URL.Query().Get("api_key"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 603, "title": "The Matrix", "poster_path": "/matrix.jpg", "vote_average": 8.2},
				{"id": 550, "title": "Fight Club", "poster_path": "/fc.jpg", "vote_average": 8.4}
			],
			"total_pages": 10,
			"total_results": 200
		}`))
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	page, err := catalog.Trending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(page.Results))
	}
	if page.Results[0].ID != 603 {
		t.Errorf("expected id 603, got %d", page.Results[0].ID)
	}
	if page.Results[0].Title != "The Matrix" {
		t.Errorf("expected title 'The Matrix', got %q", page.Results[0].Title)
	}
	if page.TotalPages != 10 {
		t.Errorf("expected total_pages 10, got %d", page.TotalPages)
	}
}

func TestTMDBCatalog_Search_Params(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("expected path /search/movie, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "matrix reloaded" {
			t.Errorf("expected query 'matrix reloaded', got %s", r.URL.Query().Get("query"))
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("expected page 2, got %s", r.URL.Query().Get("page"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"page": 2, "results": [], "total_pages": 2, "total_results": 21}`))
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	page, err := catalog.Search(context.Background(), "matrix reloaded", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 2 {
		t.Errorf("expected page 2, got %d", page.Page)
	}
}

func TestTMDBCatalog_PageClamping(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Out-of-range page numbers are clamped to 1 before the request
		if r.URL.Query().Get("page") != "1" {
			t.Errorf("expected page 1, got %s", r.URL.Query().Get("page"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"page": 1, "results": [], "total_pages": 1, "total_results": 0}`))
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	if _, err := catalog.Popular(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := catalog.TopRated(context.Background(), -3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTMDBCatalog_ByGenre_Params(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Errorf("expected path /discover/movie, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("with_genres") != "28" {
			t.Errorf("expected with_genres 28, got %s", r.URL.Query().Get("with_genres"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"page": 1, "results": [], "total_pages": 1, "total_results": 0}`))
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	if _, err := catalog.ByGenre(context.Background(), 28, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTMDBCatalog_Details_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("expected path /movie/603, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("append_to_response") != "credits,videos,similar,reviews" {
			t.Errorf("unexpected append_to_response: %s", r.URL.Query().Get("append_to_response"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"runtime": 136,
			"tagline": "Welcome to the Real World.",
			"genres": [{"id": 28, "name": "Action"}],
			"credits": {
				"cast": [{"id": 6384, "name": "Keanu Reeves", "character": "Neo"}],
				"crew": [{"id": 9340, "name": "Lana Wachowski", "job": "Director"}]
			},
			"videos": {"results": [{"key": "vKQi3bBA1y8", "site": "YouTube", "type": "Trailer"}]}
		}`))
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	detail, err := catalog.Details(context.Background(), 603)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Title != "The Matrix" {
		t.Errorf("expected title 'The Matrix', got %q", detail.Title)
	}
	if detail.Runtime != 136 {
		t.Errorf("expected runtime 136, got %d", detail.Runtime)
	}
	if detail.Credits == nil || len(detail.Credits.Cast) != 1 {
		t.Fatalf("expected 1 cast member, got %+v", detail.Credits)
	}
	if detail.Credits.Cast[0].Character != "Neo" {
		t.Errorf("expected character 'Neo', got %q", detail.Credits.Cast[0].Character)
	}
	if detail.Videos == nil || len(detail.Videos.Results) != 1 {
		t.Fatalf("expected 1 video, got %+v", detail.Videos)
	}
}

func TestTMDBCatalog_Genres_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("expected path /genre/movie/list, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comedy"}]}`))
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	genres, err := catalog.Genres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(genres))
	}
	if genres[1].Name != "Comedy" {
		t.Errorf("expected genre 'Comedy', got %q", genres[1].Name)
	}
}

func TestTMDBCatalog_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"not found", http.StatusNotFound},
		{"rate limited", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

			_, err := catalog.Trending(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, domain.ErrUpstream) {
				t.Errorf("expected ErrUpstream, got %v", err)
			}
			if !strings.Contains(err.Error(), "tmdb http") {
				t.Errorf("expected HTTP error message, got %v", err)
			}
		})
	}
}

func TestTMDBCatalog_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	_, err := catalog.Genres(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestTMDBCatalog_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	catalog := NewTMDBCatalog(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := catalog.Details(ctx, 603)
	if err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	// Note: This test doesn't set environment variables to avoid affecting other tests
	cfg := LoadConfig()

	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.Timeout)
	}
	if cfg.BaseURL == "" {
		t.Error("expected a default base URL")
	}
}
