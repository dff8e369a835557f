package filter

import "github.com/s0up4200/trendarr/trending"

// Filter decides whether a movie is kept
type Filter interface {
	// Match reports whether movie satisfies the filter
	Match(movie trending.Movie) (bool, error)

	// Expression returns the source expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (Filter, error)

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
