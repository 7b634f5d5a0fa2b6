// Package entity defines the domain entities for the watchlist feature.
package entity

import "time"

// ListKind names one of the two membership sets every account owns.
// The sets are independent: a movie may be in neither, either or both.
type ListKind string

const (
	// KindFavorites is the favorites list.
	KindFavorites ListKind = "favorites"
	// KindWatchlist is the watchlist.
	KindWatchlist ListKind = "watchlist"
)

// ListEntry is one membership record: a movie saved to a user's list with
// a denormalized snapshot of title and poster taken at insertion time.
// The snapshot is frozen; if the catalog item changes upstream, the stored
// copy does not follow.
//
// The composite unique index over (user_id, kind, movie_id) is what makes
// a concurrent duplicate add lose cleanly at the database instead of
// producing two rows.
type ListEntry struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// UserID is the owning account.
	UserID uint `gorm:"uniqueIndex:idx_list_membership;not null" json:"-"`

	// Kind partitions the entries into the two list kinds.
	Kind ListKind `gorm:"uniqueIndex:idx_list_membership;size:16;not null" json:"-"`

	// MovieID is the provider-assigned catalog item id.
	MovieID int `gorm:"uniqueIndex:idx_list_membership;not null" json:"movieId"`

	// Title is the snapshot of the movie title at insertion time.
	Title string `gorm:"size:512;not null" json:"title"`

	// PosterPath is the snapshot of the poster reference at insertion time.
	PosterPath string `gorm:"size:512" json:"posterPath"`

	// CreatedAt is the insertion timestamp.
	CreatedAt time.Time `json:"addedAt"`
}
