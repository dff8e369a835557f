package trending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	m1 = Movie{ID: 1, Title: "Dune: Part Two", ReleaseDate: "2024-02-27"}
	m2 = Movie{ID: 2, Title: "Civil War", ReleaseDate: "2024-04-10"}
	m3 = Movie{ID: 3, Title: "Furiosa", ReleaseDate: "2024-05-22"}
	m4 = Movie{ID: 4, Title: "Inside Out 2", ReleaseDate: "2024-06-11"}
)

func TestDefaultState(t *testing.T) {
	state := DefaultState()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.Data)
	assert.Len(t, state.Data, 0)

	// every call hands out a fresh value
	assert.NotSame(t, state, DefaultState())
}

func TestReduce_UnrecognizedReturnsSameState(t *testing.T) {
	prev := &State{Loading: true, Error: "boom", Data: []Movie{m1}}

	tests := []struct {
		name   string
		action Action
	}{
		{name: "unknown type", action: Unrecognized{Kind: "FETCH_POPULAR_MOVIES_REQUEST"}},
		{name: "empty type", action: Unrecognized{}},
		{name: "known type name on unrecognized", action: Unrecognized{Kind: TypeFetchFailure}},
		{name: "nil action", action: nil},
		{name: "nil pointer action", action: (*FetchSuccess)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(prev, tt.action)
			assert.Same(t, prev, next)
			assert.Equal(t, &State{Loading: true, Error: "boom", Data: []Movie{m1}}, next)
		})
	}
}

func TestReduce_NilStateUsesDefault(t *testing.T) {
	t.Run("unrecognized", func(t *testing.T) {
		assert.Equal(t, DefaultState(), Reduce(nil, Unrecognized{Kind: "@@INIT"}))
	})

	t.Run("request", func(t *testing.T) {
		assert.Equal(t, &State{Loading: true, Error: "", Data: []Movie{}}, Reduce(nil, FetchRequest{}))
	})

	t.Run("load more", func(t *testing.T) {
		next := Reduce(nil, LoadMoreSuccess{Movies: []Movie{m1}})
		assert.Equal(t, []Movie{m1}, next.Data)
	})
}

func TestReduce_Request(t *testing.T) {
	prev := &State{Loading: false, Error: "network down", Data: []Movie{m1, m2}}

	next := Reduce(prev, FetchRequest{})

	assert.NotSame(t, prev, next)
	assert.True(t, next.Loading)
	assert.Equal(t, "network down", next.Error, "stale error stays visible while retrying")
	assert.Equal(t, []Movie{m1, m2}, next.Data)
	assert.False(t, prev.Loading, "previous state must not change")
}

func TestReduce_Success(t *testing.T) {
	tests := []struct {
		name string
		prev *State
	}{
		{name: "from loading", prev: &State{Loading: true, Data: []Movie{m1}}},
		{name: "from failure", prev: &State{Loading: true, Error: "timeout", Data: []Movie{}}},
		{name: "from idle", prev: &State{Data: []Movie{m1, m2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := []Movie{m3, m4}
			next := Reduce(tt.prev, FetchSuccess{Movies: payload})

			assert.Equal(t, payload, next.Data)
			assert.False(t, next.Loading)
			assert.Empty(t, next.Error)
		})
	}
}

func TestReduce_LoadMoreAppendsInOrder(t *testing.T) {
	prev := &State{Loading: true, Error: "old", Data: []Movie{m1, m2}}

	next := Reduce(prev, LoadMoreSuccess{Movies: []Movie{m3, m4}})

	assert.Equal(t, []Movie{m1, m2, m3, m4}, next.Data)
	assert.False(t, next.Loading)
	assert.Empty(t, next.Error)
	assert.Equal(t, []Movie{m1, m2}, prev.Data)
}

func TestReduce_LoadMoreDoesNotShareBackingArray(t *testing.T) {
	backing := make([]Movie, 2, 8)
	backing[0], backing[1] = m1, m2
	prev := &State{Data: backing}

	a := Reduce(prev, LoadMoreSuccess{Movies: []Movie{m3}})
	b := Reduce(prev, LoadMoreSuccess{Movies: []Movie{m4}})

	assert.Equal(t, []Movie{m1, m2, m3}, a.Data)
	assert.Equal(t, []Movie{m1, m2, m4}, b.Data)
	assert.Equal(t, []Movie{m1, m2}, backing[:2])
}

func TestReduce_SuccessDoesNotAliasPayload(t *testing.T) {
	payload := []Movie{m1, m2}
	next := Reduce(nil, FetchSuccess{Movies: payload})

	payload[0] = m3
	assert.Equal(t, m1, next.Data[0])
}

func TestReduce_Failure(t *testing.T) {
	prev := &State{Loading: true, Data: []Movie{m1, m2}}

	next := Reduce(prev, FetchFailure{Message: "network down"})

	assert.Equal(t, &State{Loading: false, Error: "network down", Data: []Movie{}}, next)
	assert.Equal(t, []Movie{m1, m2}, prev.Data)
	assert.True(t, prev.Loading)
}

func TestReduce_FailureIsIdempotent(t *testing.T) {
	action := FetchFailure{Message: "network down"}

	once := Reduce(&State{Data: []Movie{m1}}, action)
	twice := Reduce(once, action)

	assert.Equal(t, once, twice)
	assert.Empty(t, twice.Data)
	assert.Equal(t, "network down", twice.Error)
}

func TestReduce_PointerActions(t *testing.T) {
	next := Reduce(nil, &FetchSuccess{Movies: []Movie{m1}})
	assert.Equal(t, []Movie{m1}, next.Data)

	next = Reduce(next, &LoadMoreSuccess{Movies: []Movie{m2}})
	assert.Equal(t, []Movie{m1, m2}, next.Data)

	next = Reduce(next, &FetchRequest{})
	assert.True(t, next.Loading)

	next = Reduce(next, &FetchFailure{Message: "rate limited"})
	assert.Equal(t, "rate limited", next.Error)
}

func TestReduce_Sequence(t *testing.T) {
	actions := []Action{
		FetchRequest{},
		FetchSuccess{Movies: []Movie{m1}},
		LoadMoreSuccess{Movies: []Movie{m2}},
	}

	state := DefaultState()
	for _, action := range actions {
		state = Reduce(state, action)
	}

	assert.Equal(t, &State{Loading: false, Error: "", Data: []Movie{m1, m2}}, state)
}

func TestReduce_LoadingClearedByEveryTerminalAction(t *testing.T) {
	terminal := []Action{
		FetchSuccess{Movies: []Movie{m1}},
		LoadMoreSuccess{Movies: []Movie{m2}},
		FetchFailure{Message: "nope"},
	}

	for _, action := range terminal {
		t.Run(string(action.Type()), func(t *testing.T) {
			loading := Reduce(DefaultState(), FetchRequest{})
			require.True(t, loading.Loading)
			assert.False(t, Reduce(loading, action).Loading)
		})
	}
}
