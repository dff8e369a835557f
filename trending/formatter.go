package trending

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
}

// Formatter renders a State for display
type Formatter interface {
	FormatState(state *State, movies []Movie, options FormatOptions) (string, error)
}

// ConsoleFormatter renders state as a tree-style movie list
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatState formats the status line of state followed by movies.
// movies is usually state.Data, or a filtered subset of it.
func (f *ConsoleFormatter) FormatState(state *State, movies []Movie, options FormatOptions) (string, error) {
	if state == nil {
		state = DefaultState()
	}

	var sb strings.Builder

	switch {
	case state.Loading:
		sb.WriteString("Status: loading\n")
	case state.HasError():
		sb.WriteString("Status: failed\n")
	default:
		sb.WriteString("Status: ready\n")
	}
	if state.HasError() {
		fmt.Fprintf(&sb, "Error: %s\n", state.Error)
	}

	if len(movies) == 0 {
		sb.WriteString("No movies found\n")
		return sb.String(), nil
	}

	sb.WriteString("\nMovie")
	if len(movies) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d", len(movies))
	if len(movies) != len(state.Data) {
		fmt.Fprintf(&sb, " of %d", len(state.Data))
	}
	sb.WriteString("):\n\n")

	for i, movie := range movies {
		isLast := i == len(movies)-1
		f.formatMovie(&sb, movie, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	return sb.String(), nil
}

// formatMovie formats a single movie entry
func (f *ConsoleFormatter) formatMovie(sb *strings.Builder, movie Movie, isLast bool, options FormatOptions) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}

	if year := movie.Year(); year > 0 {
		fmt.Fprintf(sb, "%s── %s (%d)\n", prefix, movie.Title, year)
	} else {
		fmt.Fprintf(sb, "%s── %s\n", prefix, movie.Title)
	}

	if !options.ShowDetails {
		return
	}

	indent := "│   "
	if isLast {
		indent = "    "
	}

	if len(movie.Genres) > 0 {
		fmt.Fprintf(sb, "%sGenres: %s\n", indent, strings.Join(movie.Genres, ", "))
	}
	if movie.VoteAverage > 0 {
		fmt.Fprintf(sb, "%sRating: %.1f (%d votes)\n", indent, movie.VoteAverage, movie.VoteCount)
	}
	if movie.Popularity > 0 {
		fmt.Fprintf(sb, "%sPopularity: %.1f\n", indent, movie.Popularity)
	}
	if movie.IMDBID != "" {
		fmt.Fprintf(sb, "%sIMDb: %s\n", indent, movie.IMDBID)
	}
}

// JSONFormatter renders state as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatState encodes state with its Data replaced by movies
func (f *JSONFormatter) FormatState(state *State, movies []Movie, _ FormatOptions) (string, error) {
	if state == nil {
		state = DefaultState()
	}

	view := State{
		Loading: state.Loading,
		Error:   state.Error,
		Data:    nonNil(movies),
	}
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return string(data) + "\n", nil
}
