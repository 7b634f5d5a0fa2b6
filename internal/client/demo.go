package client

import (
	"fmt"
	"strings"
	"time"

	catalogentity "movie_backend/internal/feature/catalog/domain/entity"
	"movie_backend/internal/feature/watchlist/domain/entity"
)

// Canned catalog used when the client runs in demo mode. The sample is
// intentionally tiny: demo mode exists so the UI can be exercised with no
// backend and no provider key, not to fake a realistic catalog.
var demoCatalog = []catalogentity.MovieDetail{
	{
		Movie: catalogentity.Movie{
			ID:          603,
			Title:       "The Matrix",
			Overview:    "A computer hacker learns the true nature of his reality.",
			PosterPath:  "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
			ReleaseDate: "1999-03-30",
			VoteAverage: 8.2,
		},
		Runtime: 136,
		Genres:  []catalogentity.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
	},
	{
		Movie: catalogentity.Movie{
			ID:          27205,
			Title:       "Inception",
			Overview:    "A thief who steals corporate secrets through dream-sharing technology.",
			PosterPath:  "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
			ReleaseDate: "2010-07-15",
			VoteAverage: 8.4,
		},
		Runtime: 148,
		Genres:  []catalogentity.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
	},
	{
		Movie: catalogentity.Movie{
			ID:          550,
			Title:       "Fight Club",
			Overview:    "An insomniac office worker and a soap maker form an underground club.",
			PosterPath:  "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
			ReleaseDate: "1999-10-15",
			VoteAverage: 8.4,
		},
		Runtime: 139,
		Genres:  []catalogentity.Genre{{ID: 18, Name: "Drama"}},
	},
}

func demoMovies() []catalogentity.Movie {
	out := make([]catalogentity.Movie, 0, len(demoCatalog))
	for _, d := range demoCatalog {
		out = append(out, d.Movie)
	}
	return out
}

func demoSearch(query string) []catalogentity.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []catalogentity.Movie
	for _, d := range demoCatalog {
		if strings.Contains(strings.ToLower(d.Title), q) {
			out = append(out, d.Movie)
		}
	}
	return out
}

func demoDetails(movieID int) (*catalogentity.MovieDetail, error) {
	for _, d := range demoCatalog {
		if d.ID == movieID {
			detail := d
			return &detail, nil
		}
	}
	return nil, fmt.Errorf("demo catalog has no movie %d", movieID)
}

// demoAdd mirrors the server contract locally: duplicate adds fail, the
// snapshot is frozen at insertion time.
func (c *Client) demoAdd(kind entity.ListKind, movieID int) error {
	detail, err := demoDetails(movieID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.membership[kind][movieID]; ok {
		return &APIError{Status: 400, Message: fmt.Sprintf("Movie already in %s", kind)}
	}
	c.demoLists[kind] = append(c.demoLists[kind], entity.ListEntry{
		Kind:       kind,
		MovieID:    detail.ID,
		Title:      detail.Title,
		PosterPath: detail.PosterPath,
		CreatedAt:  time.Now(),
	})
	c.membership[kind][movieID] = struct{}{}
	return nil
}

// demoRemove is idempotent, as the server's delete is.
func (c *Client) demoRemove(kind entity.ListKind, movieID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := c.demoLists[kind]
	for i, e := range entries {
		if e.MovieID == movieID {
			c.demoLists[kind] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	delete(c.membership[kind], movieID)
}

func (c *Client) demoList(kind entity.ListKind) []entity.ListEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.ListEntry, len(c.demoLists[kind]))
	copy(out, c.demoLists[kind])
	return out
}
