package store

import "github.com/s0up4200/trendarr/trending"

// Option configures a Store.
type Option func(*Store)

// WithInitialState starts the store from state instead of trending.DefaultState.
func WithInitialState(state *trending.State) Option {
	return func(s *Store) {
		if state != nil {
			s.state = state
		}
	}
}

// WithReducer replaces trending.Reduce, typically to wrap it.
func WithReducer(reducer trending.Reducer) Option {
	return func(s *Store) {
		if reducer != nil {
			s.reducer = reducer
		}
	}
}

// WithHistory keeps the last n transitions. Zero disables history.
func WithHistory(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.historySize = n
		}
	}
}
