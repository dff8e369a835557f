package trending

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the wire shape of an action
type envelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction reads a {"type", "payload"} envelope into an Action.
//
// Unknown types are not an error; they decode to Unrecognized so that the
// reducer can ignore them. Payloads are read leniently: a single movie object
// where a list is expected becomes a one-element list, and a failure payload
// that is not a string is kept as its message field or raw JSON text.
func DecodeAction(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DecodeError{Reason: "invalid JSON", Kind: ErrMalformedAction, Err: err}
	}
	if env.Type == "" {
		return nil, &DecodeError{Reason: "missing type", Kind: ErrMalformedAction}
	}

	switch env.Type {
	case TypeFetchRequest:
		return FetchRequest{}, nil

	case TypeFetchSuccess:
		movies, err := decodeMovies(env.Payload)
		if err != nil {
			return nil, &DecodeError{Type: env.Type, Reason: err.Error(), Kind: ErrInvalidPayload, Err: err}
		}
		return FetchSuccess{Movies: movies}, nil

	case TypeLoadMoreSuccess:
		movies, err := decodeMovies(env.Payload)
		if err != nil {
			return nil, &DecodeError{Type: env.Type, Reason: err.Error(), Kind: ErrInvalidPayload, Err: err}
		}
		return LoadMoreSuccess{Movies: movies}, nil

	case TypeFetchFailure:
		return FetchFailure{Message: decodeMessage(env.Payload)}, nil

	default:
		return Unrecognized{Kind: env.Type, Payload: env.Payload}, nil
	}
}

// EncodeAction writes action as a {"type", "payload"} envelope
func EncodeAction(action Action) ([]byte, error) {
	action = deref(action)
	if action == nil {
		return nil, ErrNilAction
	}

	out := struct {
		Type    ActionType `json:"type"`
		Payload any        `json:"payload,omitempty"`
	}{Type: action.Type()}

	switch a := action.(type) {
	case FetchSuccess:
		out.Payload = nonNil(a.Movies)
	case LoadMoreSuccess:
		out.Payload = nonNil(a.Movies)
	case FetchFailure:
		out.Payload = a.Message
	case Unrecognized:
		if a.Kind == "" {
			return nil, fmt.Errorf("encode action: %w: missing type", ErrMalformedAction)
		}
		if a.Kind.Known() {
			return nil, fmt.Errorf("encode action: %w: unrecognized action uses known type %s", ErrMalformedAction, a.Kind)
		}
		if len(a.Payload) > 0 {
			out.Payload = a.Payload
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", action.Type(), err)
	}
	return data, nil
}

func decodeMovies(raw json.RawMessage) ([]Movie, error) {
	trimmed := bytes.TrimSpace(raw)
	if isNull(trimmed) {
		return []Movie{}, nil
	}

	switch trimmed[0] {
	case '[':
		var movies []Movie
		if err := json.Unmarshal(trimmed, &movies); err != nil {
			return nil, fmt.Errorf("movie list: %w", err)
		}
		return nonNil(movies), nil
	case '{':
		var movie Movie
		if err := json.Unmarshal(trimmed, &movie); err != nil {
			return nil, fmt.Errorf("movie: %w", err)
		}
		return []Movie{movie}, nil
	default:
		return nil, fmt.Errorf("expected a list of movies, got %s", jsonKind(trimmed))
	}
}

func decodeMessage(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if isNull(trimmed) {
		return ""
	}

	var message string
	if err := json.Unmarshal(trimmed, &message); err == nil {
		return message
	}

	if trimmed[0] == '{' {
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(trimmed, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
	}

	return string(trimmed)
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func jsonKind(raw []byte) string {
	switch raw[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

func nonNil(movies []Movie) []Movie {
	if movies == nil {
		return []Movie{}
	}
	return movies
}
