package source

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"golift.io/starr/radarr"

	"github.com/s0up4200/trendarr/trending"
)

// LoadRadarrExport decodes a saved Radarr /api/v3/movie response from r
func LoadRadarrExport(ctx context.Context, r io.Reader) ([]trending.Movie, error) {
	var exported []*radarr.Movie
	if err := json.NewDecoder(r).Decode(&exported); err != nil {
		return nil, fmt.Errorf("failed to decode radarr export: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	movies := make([]trending.Movie, 0, len(exported))
	for _, movie := range exported {
		if movie == nil {
			continue
		}
		movies = append(movies, ConvertRadarrMovie(movie))
	}
	if len(movies) == 0 {
		return nil, ErrEmptyExport
	}

	return movies, nil
}

// LoadRadarrExportFile opens path and decodes it with LoadRadarrExport
func LoadRadarrExportFile(ctx context.Context, path string) ([]trending.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open radarr export: %w", err)
	}
	defer f.Close()

	return LoadRadarrExport(ctx, f)
}

// ConvertRadarrMovie converts a Radarr movie to a trending movie record.
// The record is keyed by TMDB id, matching what a trending feed returns.
func ConvertRadarrMovie(movie *radarr.Movie) trending.Movie {
	m := trending.Movie{
		ID:          movie.TmdbID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		ReleaseDate: releaseDate(movie),
		Popularity:  float64(movie.Popularity),
		IMDBID:      movie.ImdbID,
		MediaType:   "movie",
	}

	if len(movie.Genres) > 0 {
		m.Genres = append([]string(nil), movie.Genres...)
	}

	if rating, ok := movie.Ratings["tmdb"]; ok {
		m.VoteAverage = float64(rating.Value)
		m.VoteCount = int64(rating.Votes)
	}

	return m
}

// SortByPopularity returns a copy of movies ordered from most to least popular.
// Ties keep their original order.
func SortByPopularity(movies []trending.Movie) []trending.Movie {
	sorted := slices.Clone(movies)
	slices.SortStableFunc(sorted, func(a, b trending.Movie) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	return sorted
}

// releaseDate prefers the theatrical release, then digital, then physical, then the bare year
func releaseDate(movie *radarr.Movie) string {
	for _, t := range []time.Time{movie.InCinemas, movie.DigitalRelease, movie.PhysicalRelease} {
		if !t.IsZero() {
			return t.Format(time.DateOnly)
		}
	}
	if movie.Year > 0 {
		return strconv.Itoa(movie.Year)
	}
	return ""
}
