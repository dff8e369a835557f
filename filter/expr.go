package filter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/trendarr/trending"
)

// DefaultCacheSize is the number of compiled expressions a compiler keeps
const DefaultCacheSize = 100

// ExprFilter is a compiled expr filter
type ExprFilter struct {
	expression string
	program    *vm.Program
}

// CompilerOption configures an expr compiler
type CompilerOption func(*exprCompiler)

// WithCache sets the cache size; zero disables caching
func WithCache(size int) CompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		} else {
			c.cache = nil
		}
	}
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	cache *lruCache
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) Compiler {
	c := &exprCompiler{
		cache: newLRUCache(DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CompileFilter compiles expression without caching
func CompileFilter(expression string) (*ExprFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Type-check against the shape of a movie environment
	program, err := expr.Compile(expression,
		expr.Env(movieEnv(trending.Movie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &ExprFilter{
		expression: expression,
		program:    program,
	}, nil
}

// Compile compiles an expression, reusing a cached program when possible
func (c *exprCompiler) Compile(expression string) (Filter, error) {
	key := strings.TrimSpace(expression)

	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached, nil
		}
	}

	filter, err := CompileFilter(key)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Put(key, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Match evaluates the filter against a movie
func (f *ExprFilter) Match(movie trending.Movie) (bool, error) {
	result, err := expr.Run(f.program, movieEnv(movie))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: movie.Title,
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *ExprFilter) Expression() string {
	return f.expression
}

// Apply returns the movies matching filter, in input order.
// A nil filter keeps every movie.
func Apply(ctx context.Context, filter Filter, movies []trending.Movie) ([]trending.Movie, error) {
	matches := make([]trending.Movie, 0, len(movies))
	if filter == nil {
		return append(matches, movies...), nil
	}

	for i, movie := range movies {
		if i%100 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		ok, err := filter.Match(movie)
		if err != nil {
			return nil, fmt.Errorf("failed to apply filter: %w", err)
		}
		if ok {
			matches = append(matches, movie)
		}
	}

	return matches, nil
}

// movieEnv builds the evaluation environment for one movie
func movieEnv(movie trending.Movie) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	released, _ := movie.Released()

	env["Movie"] = movie
	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["OriginalTitle"] = movie.OriginalTitle
	env["Overview"] = movie.Overview
	env["Year"] = movie.Year()
	env["ReleaseDate"] = movie.ReleaseDate
	env["Released"] = released
	env["Popularity"] = movie.Popularity
	env["Rating"] = movie.VoteAverage
	env["Votes"] = int(movie.VoteCount)
	env["Genres"] = movie.Genres
	env["MediaType"] = movie.MediaType
	env["IMDBID"] = movie.IMDBID

	env["hasGenre"] = createHasGenreFunc(movie.Genres)

	return env
}

// addHelperFunctions adds the movie-independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse(time.DateOnly, dateStr)
		return t
	}
	// Case-insensitive string helpers; contains, startsWith and endsWith are expr operators
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefixFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffixFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

func createHasGenreFunc(genres []string) func(string) bool {
	return func(genre string) bool {
		for _, g := range genres {
			if strings.EqualFold(g, genre) {
				return true
			}
		}
		return false
	}
}
