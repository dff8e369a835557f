// Package trending holds the trending-movies slice of application state and
// the reducer that moves it between states.
//
// The state is a small value with three fields: a loading flag, the last
// failure message and the list of movies currently shown. It only changes
// through Reduce, which maps a prior state and an Action to the next state
// without touching either input.
//
// # Actions
//
// Four action kinds are recognized:
//
//   - FetchRequest: a fetch has started
//   - FetchSuccess: the first page arrived and replaces the list
//   - LoadMoreSuccess: a later page arrived and is appended to the list
//   - FetchFailure: the fetch failed, the list is cleared and the message kept
//
// Anything else (Unrecognized, or a nil Action) leaves the state untouched and
// Reduce returns the very same pointer it was given.
//
// # Usage
//
//	state := trending.Reduce(nil, trending.Request())
//	state = trending.Reduce(state, trending.FromPage(1, movies, nil))
//	state = trending.Reduce(state, trending.FromPage(2, more, nil))
//
// Actions travel between processes as JSON envelopes of the form
// {"type": "...", "payload": ...}; see DecodeAction and EncodeAction.
package trending
