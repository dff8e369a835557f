package trending

import (
	"strconv"
	"time"
)

// Movie is a single trending movie record
type Movie struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title,omitempty"`
	Overview      string   `json:"overview,omitempty"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	Popularity    float64  `json:"popularity,omitempty"`
	VoteAverage   float64  `json:"vote_average,omitempty"`
	VoteCount     int64    `json:"vote_count,omitempty"`
	PosterPath    string   `json:"poster_path,omitempty"`
	Genres        []string `json:"genres,omitempty"`
	MediaType     string   `json:"media_type,omitempty"`
	IMDBID        string   `json:"imdb_id,omitempty"`
}

// Year returns the release year, or 0 when the release date is missing or malformed
func (m Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Released returns the parsed release date
func (m Movie) Released() (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, m.ReleaseDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// State is the trending movies slice of the application state.
// A *State handed out by Reduce must be treated as read-only.
type State struct {
	Loading bool    `json:"loading"`
	Error   string  `json:"error"`
	Data    []Movie `json:"data"`
}

// DefaultState returns the state a store starts from
func DefaultState() *State {
	return &State{
		Loading: false,
		Error:   "",
		Data:    []Movie{},
	}
}

// HasError reports whether the last fetch failed
func (s *State) HasError() bool {
	return s != nil && s.Error != ""
}

// Len returns the number of movies held
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Data)
}
