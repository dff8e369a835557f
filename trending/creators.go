package trending

import "strings"

const unknownFailure = "unknown error"

// Request returns the action dispatched before a fetch starts
func Request() Action {
	return FetchRequest{}
}

// FromPage turns the outcome of fetching one page into the action to dispatch.
// A failure always carries a non-empty message. Page 1 (or lower) replaces the
// list, later pages extend it.
func FromPage(page int, movies []Movie, err error) Action {
	if err != nil {
		return Failure(err.Error())
	}
	if page <= 1 {
		return FetchSuccess{Movies: movies}
	}
	return LoadMoreSuccess{Movies: movies}
}

// Failure returns a failure action, substituting a generic message for an empty one
func Failure(message string) Action {
	if strings.TrimSpace(message) == "" {
		message = unknownFailure
	}
	return FetchFailure{Message: message}
}

// Paginate splits movies into pages of pageSize and returns the action sequence
// a paging fetch of them would produce: a request followed by one success and
// then one load-more per further page. An empty input still yields a success
// with an empty list.
func Paginate(movies []Movie, pageSize int) []Action {
	if pageSize <= 0 {
		pageSize = len(movies)
	}

	actions := []Action{Request()}
	if len(movies) == 0 {
		return append(actions, FetchSuccess{Movies: []Movie{}})
	}

	page := 1
	for start := 0; start < len(movies); start += pageSize {
		end := min(start+pageSize, len(movies))
		actions = append(actions, FromPage(page, movies[start:end:end], nil))
		page++
	}
	return actions
}
