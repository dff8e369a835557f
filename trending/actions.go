package trending

import "encoding/json"

// ActionType is the discriminator carried by every action on the wire
type ActionType string

const (
	// TypeFetchRequest marks the start of a fetch
	TypeFetchRequest ActionType = "FETCH_TRENDING_MOVIES_REQUEST"
	// TypeFetchSuccess carries the first page of movies
	TypeFetchSuccess ActionType = "FETCH_TRENDING_MOVIES_SUCCESS"
	// TypeLoadMoreSuccess carries a further page of movies
	TypeLoadMoreSuccess ActionType = "LOAD_MORE_TRENDING_MOVIES_SUCCESS"
	// TypeFetchFailure carries the failure message
	TypeFetchFailure ActionType = "FETCH_TRENDING_MOVIES_FAILURE"
)

// Known reports whether t is one of the four recognized action types
func (t ActionType) Known() bool {
	switch t {
	case TypeFetchRequest, TypeFetchSuccess, TypeLoadMoreSuccess, TypeFetchFailure:
		return true
	}
	return false
}

// Action is the closed set of messages Reduce understands.
// Only types in this package implement it.
type Action interface {
	Type() ActionType
	action()
}

// FetchRequest signals that a fetch of trending movies has started
type FetchRequest struct{}

// FetchSuccess carries the first page of a successful fetch
type FetchSuccess struct {
	Movies []Movie
}

// LoadMoreSuccess carries an additional page to append
type LoadMoreSuccess struct {
	Movies []Movie
}

// FetchFailure carries the message of a failed fetch
type FetchFailure struct {
	Message string
}

// Unrecognized is any action whose type is not one of the four above.
// Reduce leaves state unchanged for it.
type Unrecognized struct {
	Kind    ActionType
	Payload json.RawMessage
}

func (FetchRequest) Type() ActionType    { return TypeFetchRequest }
func (FetchSuccess) Type() ActionType    { return TypeFetchSuccess }
func (LoadMoreSuccess) Type() ActionType { return TypeLoadMoreSuccess }
func (FetchFailure) Type() ActionType    { return TypeFetchFailure }
func (u Unrecognized) Type() ActionType  { return u.Kind }

func (FetchRequest) action()    {}
func (FetchSuccess) action()    {}
func (LoadMoreSuccess) action() {}
func (FetchFailure) action()    {}
func (Unrecognized) action()    {}

// TypeOf returns the type of action, or "" for a nil action
func TypeOf(action Action) ActionType {
	action = deref(action)
	if action == nil {
		return ""
	}
	return action.Type()
}
