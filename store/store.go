package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/trendarr/trending"
)

// DefaultHistorySize is the number of transitions kept unless WithHistory says otherwise
const DefaultHistorySize = 100

// Listener is notified after a dispatch changed the state
type Listener func(prev, next *trending.State, action trending.Action)

// Transition records one dispatched action
type Transition struct {
	Seq     int
	Action  trending.ActionType
	Changed bool
	State   *trending.State
}

// Store holds the current trending state and threads actions through the reducer
// one at a time
type Store struct {
	mu sync.RWMutex

	state       *trending.State
	reducer     trending.Reducer
	listeners   map[int]Listener
	order       []int
	nextID      int
	seq         int
	history     []Transition
	historySize int
	logger      zerolog.Logger

	pending   []notification
	notifying bool
}

// notification is a changed transition waiting for its listeners
type notification struct {
	prev, next *trending.State
	action     trending.Action
	listeners  []Listener
}

// New creates a store starting from the default state
func New(logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		state:       trending.DefaultState(),
		reducer:     trending.Reduce,
		listeners:   make(map[int]Listener),
		historySize: DefaultHistorySize,
		logger:      logger.With().Str("component", "store").Logger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current state. The returned value must not be modified.
func (s *Store) State() *trending.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Dispatch applies action and returns the resulting state.
// Listeners see transitions in dispatch order. A Dispatch made while listeners
// are running, including from a listener, is applied at once and its
// listeners run after the current round.
func (s *Store) Dispatch(action trending.Action) *trending.State {
	s.mu.Lock()
	prev := s.state
	next := s.reducer(prev, action)
	if next == nil {
		next = prev
	}
	s.state = next
	s.seq++

	changed := next != prev
	transition := Transition{
		Seq:     s.seq,
		Action:  trending.TypeOf(action),
		Changed: changed,
		State:   next,
	}
	s.record(transition)
	if changed {
		s.pending = append(s.pending, notification{
			prev:      prev,
			next:      next,
			action:    action,
			listeners: s.snapshotListeners(),
		})
	}
	s.mu.Unlock()

	event := s.logger.Debug().
		Int("seq", transition.Seq).
		Str("action", string(transition.Action)).
		Bool("changed", changed)
	if changed {
		event = event.
			Bool("loading", next.Loading).
			Str("error", next.Error).
			Int("movies", len(next.Data))
	}
	event.Msg("Dispatched action")

	if changed {
		s.drain()
	}

	return next
}

// drain delivers pending notifications unless another call is already doing so
func (s *Store) drain() {
	s.mu.Lock()
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true

	for len(s.pending) > 0 {
		n := s.pending[0]
		s.pending[0] = notification{}
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, listener := range n.listeners {
			s.notify(listener, n.prev, n.next, n.action)
		}

		s.mu.Lock()
	}

	s.notifying = false
	s.pending = nil
	s.mu.Unlock()
}

// Subscribe registers listener and returns a function that removes it again
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.listeners, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// History returns the recorded transitions, oldest first
func (s *Store) History() []Transition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]Transition, len(s.history))
	copy(history, s.history)
	return history
}

// record appends t to the bounded history; callers hold mu
func (s *Store) record(t Transition) {
	if s.historySize == 0 {
		return
	}
	if len(s.history) >= s.historySize {
		s.history = append(s.history[:0:0], s.history[len(s.history)-s.historySize+1:]...)
	}
	s.history = append(s.history, t)
}

// snapshotListeners returns listeners in subscription order; callers hold mu
func (s *Store) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	return listeners
}

func (s *Store) notify(listener Listener, prev, next *trending.State, action trending.Action) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Interface("panic", r).
				Str("action", string(trending.TypeOf(action))).
				Msg("Listener panicked")
		}
	}()

	listener(prev, next, action)
}
