package trending

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Action
	}{
		{
			name:     "request",
			input:    `{"type":"FETCH_TRENDING_MOVIES_REQUEST"}`,
			expected: FetchRequest{},
		},
		{
			name:     "request ignores payload",
			input:    `{"type":"FETCH_TRENDING_MOVIES_REQUEST","payload":{"page":2}}`,
			expected: FetchRequest{},
		},
		{
			name:  "success with list",
			input: `{"type":"FETCH_TRENDING_MOVIES_SUCCESS","payload":[{"id":1,"title":"Dune: Part Two","release_date":"2024-02-27"}]}`,
			expected: FetchSuccess{Movies: []Movie{
				{ID: 1, Title: "Dune: Part Two", ReleaseDate: "2024-02-27"},
			}},
		},
		{
			name:     "success with null payload",
			input:    `{"type":"FETCH_TRENDING_MOVIES_SUCCESS","payload":null}`,
			expected: FetchSuccess{Movies: []Movie{}},
		},
		{
			name:     "success with single object",
			input:    `{"type":"FETCH_TRENDING_MOVIES_SUCCESS","payload":{"id":7,"title":"Alien: Romulus"}}`,
			expected: FetchSuccess{Movies: []Movie{{ID: 7, Title: "Alien: Romulus"}}},
		},
		{
			name:     "load more",
			input:    `{"type":"LOAD_MORE_TRENDING_MOVIES_SUCCESS","payload":[{"id":2,"title":"Civil War"}]}`,
			expected: LoadMoreSuccess{Movies: []Movie{{ID: 2, Title: "Civil War"}}},
		},
		{
			name:     "failure with string",
			input:    `{"type":"FETCH_TRENDING_MOVIES_FAILURE","payload":"network down"}`,
			expected: FetchFailure{Message: "network down"},
		},
		{
			name:     "failure with error object",
			input:    `{"type":"FETCH_TRENDING_MOVIES_FAILURE","payload":{"message":"Request failed with status code 401","code":"ERR_BAD_REQUEST"}}`,
			expected: FetchFailure{Message: "Request failed with status code 401"},
		},
		{
			name:     "failure with number",
			input:    `{"type":"FETCH_TRENDING_MOVIES_FAILURE","payload":503}`,
			expected: FetchFailure{Message: "503"},
		},
		{
			name:     "unknown type keeps payload",
			input:    `{"type":"SET_LANGUAGE","payload":"de"}`,
			expected: Unrecognized{Kind: "SET_LANGUAGE", Payload: []byte(`"de"`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := DecodeAction([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestDecodeAction_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    error
		errText string
	}{
		{name: "not json", input: `{"type":`, kind: ErrMalformedAction, errText: "invalid JSON"},
		{name: "not an object", input: `"FETCH_TRENDING_MOVIES_REQUEST"`, kind: ErrMalformedAction, errText: "invalid JSON"},
		{name: "missing type", input: `{"payload":[]}`, kind: ErrMalformedAction, errText: "missing type"},
		{name: "null", input: `null`, kind: ErrMalformedAction, errText: "missing type"},
		{name: "success with string", input: `{"type":"FETCH_TRENDING_MOVIES_SUCCESS","payload":"oops"}`, kind: ErrInvalidPayload, errText: "got string"},
		{name: "load more with number", input: `{"type":"LOAD_MORE_TRENDING_MOVIES_SUCCESS","payload":3}`, kind: ErrInvalidPayload, errText: "got number"},
		{name: "list of strings", input: `{"type":"FETCH_TRENDING_MOVIES_SUCCESS","payload":["a"]}`, kind: ErrInvalidPayload, errText: "movie list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAction([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.errText)

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr))
		})
	}
}

func TestEncodeAction(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		expected string
	}{
		{name: "request", action: FetchRequest{}, expected: `{"type":"FETCH_TRENDING_MOVIES_REQUEST"}`},
		{name: "success with nil list", action: FetchSuccess{}, expected: `{"type":"FETCH_TRENDING_MOVIES_SUCCESS","payload":[]}`},
		{
			name:     "load more",
			action:   &LoadMoreSuccess{Movies: []Movie{{ID: 2, Title: "Civil War"}}},
			expected: `{"type":"LOAD_MORE_TRENDING_MOVIES_SUCCESS","payload":[{"id":2,"title":"Civil War"}]}`,
		},
		{name: "failure", action: FetchFailure{Message: "network down"}, expected: `{"type":"FETCH_TRENDING_MOVIES_FAILURE","payload":"network down"}`},
		{name: "unrecognized", action: Unrecognized{Kind: "SET_LANGUAGE", Payload: []byte(`"de"`)}, expected: `{"type":"SET_LANGUAGE","payload":"de"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeAction(tt.action)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}

	t.Run("nil action", func(t *testing.T) {
		_, err := EncodeAction(nil)
		assert.ErrorIs(t, err, ErrNilAction)
	})

	t.Run("unrecognized without type", func(t *testing.T) {
		_, err := EncodeAction(Unrecognized{})
		assert.ErrorIs(t, err, ErrMalformedAction)
	})

	t.Run("unrecognized with known type", func(t *testing.T) {
		for _, kind := range []ActionType{TypeFetchRequest, TypeFetchSuccess, TypeLoadMoreSuccess, TypeFetchFailure} {
			data, err := EncodeAction(Unrecognized{Kind: kind, Payload: []byte(`"x"`)})
			assert.ErrorIs(t, err, ErrMalformedAction, kind)
			assert.Nil(t, data)
		}
	})
}

func TestEncodeDecodeFeedsReducer(t *testing.T) {
	actions := []Action{
		FetchRequest{},
		FetchSuccess{Movies: []Movie{m1}},
		LoadMoreSuccess{Movies: []Movie{m2, m3}},
	}

	var state *State
	for _, action := range actions {
		data, err := EncodeAction(action)
		require.NoError(t, err)

		decoded, err := DecodeAction(data)
		require.NoError(t, err)
		state = Reduce(state, decoded)
	}

	assert.Equal(t, []Movie{m1, m2, m3}, state.Data)
	assert.False(t, state.Loading)
}
