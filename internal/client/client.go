// Package client is the application-shell side of the system: a typed REST
// client over the backend API that owns the piece of state the UI needs
// synchronously — the bearer token and a per-list mirror of membership ids
// for O(1) toggle-state lookups.
//
// The mirror is a read-through cache, never authoritative: it is rebuilt
// from the server response on every list round trip, and a conflicting add
// (the server says "already present") folds the id back in rather than
// trusting the stale local view.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"movie_backend/internal/api"
	catalogentity "movie_backend/internal/feature/catalog/domain/entity"
	catalogdto "movie_backend/internal/feature/catalog/transport/http/dto"
	"movie_backend/internal/feature/watchlist/domain/entity"
	watchlistdto "movie_backend/internal/feature/watchlist/transport/http/dto"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the movie backend. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	demo    bool

	mu         sync.RWMutex
	token      string
	membership map[entity.ListKind]map[int]struct{}

	// demo mode state: locally held list entries instead of server rows
	demoLists map[entity.ListKind][]entity.ListEntry
}

// NewClient creates a client for the backend at baseURL.
// A nil httpClient falls back to a 10 second timeout default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		http:       httpClient,
		membership: emptyMirror(),
	}
}

// NewDemoClient creates a client in demo mode: no network calls are ever
// made, catalog data comes from a canned sample set and list membership
// lives only in memory. Demo mode is an explicit construction-time choice,
// not a silent fallback on network errors.
func NewDemoClient() *Client {
	return &Client{
		demo:       true,
		membership: emptyMirror(),
		demoLists:  map[entity.ListKind][]entity.ListEntry{},
	}
}

func emptyMirror() map[entity.ListKind]map[int]struct{} {
	return map[entity.ListKind]map[int]struct{}{
		entity.KindFavorites: {},
		entity.KindWatchlist: {},
	}
}

// Token returns the current bearer token ("" when logged out).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Logout drops the token and clears the membership mirror.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.membership = emptyMirror()
}

// InList reports whether the movie id is in the local mirror for the given
// list kind. This is the O(1) lookup the toggle UI uses; it reflects the
// last server round trip, not necessarily the server's current state.
func (c *Client) InList(kind entity.ListKind, movieID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.membership[kind][movieID]
	return ok
}

// do issues a request and decodes the JSON response into out (when non-nil).
// Non-2xx responses are returned as *APIError with the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var envelope api.ErrorResponse
		_ = json.NewDecoder(res.Body).Decode(&envelope)
		return &APIError{Status: res.StatusCode, Message: envelope.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Register creates an account and stores the issued token.
func (c *Client) Register(ctx context.Context, username, email, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setToken(resp.Token)
	return &resp, nil
}

// Login authenticates and stores the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setToken(resp.Token)
	return &resp, nil
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	// new identity, stale mirror
	c.membership = emptyMirror()
}

// Me returns the account the stored token resolves to.
func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var resp api.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Profile returns the caller's profile view.
func (c *Client) Profile(ctx context.Context) (*api.User, error) {
	var resp api.UserResponse
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile applies the non-nil fields and returns the updated view.
func (c *Client) UpdateProfile(ctx context.Context, username, email, profilePicture *string) (*api.User, error) {
	payload := map[string]any{}
	if username != nil {
		payload["username"] = *username
	}
	if email != nil {
		payload["email"] = *email
	}
	if profilePicture != nil {
		payload["profilePicture"] = *profilePicture
	}

	var resp api.UserResponse
	if err := c.do(ctx, http.MethodPut, "/users/profile", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Favorites fetches the favorites list and rebuilds that side of the mirror.
func (c *Client) Favorites(ctx context.Context) ([]entity.ListEntry, error) {
	if c.demo {
		return c.demoList(entity.KindFavorites), nil
	}
	var resp watchlistdto.FavoritesResponse
	if err := c.do(ctx, http.MethodGet, "/users/favorites", nil, &resp); err != nil {
		return nil, err
	}
	c.rebuildMirror(entity.KindFavorites, resp.Favorites)
	return resp.Favorites, nil
}

// Watchlist fetches the watchlist and rebuilds that side of the mirror.
func (c *Client) Watchlist(ctx context.Context) ([]entity.ListEntry, error) {
	if c.demo {
		return c.demoList(entity.KindWatchlist), nil
	}
	var resp watchlistdto.WatchlistResponse
	if err := c.do(ctx, http.MethodGet, "/users/watchlist", nil, &resp); err != nil {
		return nil, err
	}
	c.rebuildMirror(entity.KindWatchlist, resp.Watchlist)
	return resp.Watchlist, nil
}

func (c *Client) rebuildMirror(kind entity.ListKind, entries []entity.ListEntry) {
	ids := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		ids[e.MovieID] = struct{}{}
	}
	c.mu.Lock()
	c.membership[kind] = ids
	c.mu.Unlock()
}

// AddToList adds a movie to the given list and updates the mirror.
// A duplicate add comes back as *APIError (400); the mirror is still
// marked present because the server just confirmed membership.
func (c *Client) AddToList(ctx context.Context, kind entity.ListKind, movieID int) error {
	if c.demo {
		return c.demoAdd(kind, movieID)
	}

	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/movies/%s/%d", kind, movieID), nil, nil)
	var apiErr *APIError
	if err == nil || (errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest) {
		c.mu.Lock()
		c.membership[kind][movieID] = struct{}{}
		c.mu.Unlock()
	}
	return err
}

// RemoveFromList removes a movie from the given list and updates the
// mirror. Removing an absent movie succeeds; the server's delete is
// idempotent and the mirror just ends up where it already was.
func (c *Client) RemoveFromList(ctx context.Context, kind entity.ListKind, movieID int) error {
	if c.demo {
		c.demoRemove(kind, movieID)
		return nil
	}

	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%s/%d", kind, movieID), nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.membership[kind], movieID)
	c.mu.Unlock()
	return nil
}

// Trending returns the trending movie list.
func (c *Client) Trending(ctx context.Context) ([]catalogentity.Movie, error) {
	if c.demo {
		return demoMovies(), nil
	}
	var resp catalogdto.ResultsResponse
	if err := c.do(ctx, http.MethodGet, "/movies/trending", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Search searches the catalog by title.
func (c *Client) Search(ctx context.Context, query string, page int) ([]catalogentity.Movie, error) {
	if c.demo {
		return demoSearch(query), nil
	}
	var resp catalogdto.ResultsResponse
	path := fmt.Sprintf("/movies/search?query=%s&page=%d", url.QueryEscape(query), page)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Details returns the full detail view of one movie.
func (c *Client) Details(ctx context.Context, movieID int) (*catalogentity.MovieDetail, error) {
	if c.demo {
		return demoDetails(movieID)
	}
	var resp catalogdto.MovieResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/details/%d", movieID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Movie, nil
}
