// Package dto defines response envelopes for the watchlist feature's HTTP transport layer.
package dto

import "movie_backend/internal/feature/watchlist/domain/entity"

// FavoritesResponse wraps a user's favorites list.
type FavoritesResponse struct {
	Favorites []entity.ListEntry `json:"favorites"`
}

// WatchlistResponse wraps a user's watchlist.
type WatchlistResponse struct {
	Watchlist []entity.ListEntry `json:"watchlist"`
}
