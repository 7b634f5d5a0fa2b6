// Package entity defines the catalog domain types mirrored from the
// external movie metadata provider.
//
// These records are never owned by this system: they are decoded from
// provider responses and passed through. JSON tags follow the provider's
// snake_case field names so the outward API keeps the shape clients of the
// original service already expect.
package entity

// Movie is a catalog item as it appears in list responses
// (trending, popular, search, discover).
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
}

// Page is the provider's paged list envelope.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a provider-assigned genre tag.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited actor on a detail response.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is one credited crew entry on a detail response.
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits holds the cast and crew of a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is a trailer or clip reference.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// VideoList wraps the provider's nested video results.
type VideoList struct {
	Results []Video `json:"results"`
}

// Review is a user review attached to a detail response.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ReviewList wraps the provider's nested review results.
type ReviewList struct {
	Results []Review `json:"results"`
}

// MovieDetail is the full detail response for a single movie, including
// the nested data appended by the provider (credits, videos, similar,
// reviews).
type MovieDetail struct {
	Movie
	Tagline string     `json:"tagline,omitempty"`
	Runtime int        `json:"runtime"`
	Status  string     `json:"status,omitempty"`
	Genres  []Genre    `json:"genres"`
	Credits *Credits   `json:"credits,omitempty"`
	Videos  *VideoList `json:"videos,omitempty"`
	Similar *Page      `json:"similar,omitempty"`
	Reviews *ReviewList `json:"reviews,omitempty"`
}
