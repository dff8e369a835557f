package trending

// Reduce returns the state that follows prev once action is applied.
//
// A nil prev is replaced by DefaultState. Recognized actions always produce a
// new *State; prev and the action's payload are never written. Any other
// action, including nil, returns prev itself.
func Reduce(prev *State, action Action) *State {
	if prev == nil {
		prev = DefaultState()
	}

	switch a := deref(action).(type) {
	case FetchRequest:
		// Error is left as is, a retry keeps showing the last failure
		next := *prev
		next.Loading = true
		return &next

	case FetchSuccess:
		return &State{
			Loading: false,
			Error:   "",
			Data:    append([]Movie{}, a.Movies...),
		}

	case LoadMoreSuccess:
		data := make([]Movie, 0, len(prev.Data)+len(a.Movies))
		data = append(data, prev.Data...)
		data = append(data, a.Movies...)
		return &State{
			Loading: false,
			Error:   "",
			Data:    data,
		}

	case FetchFailure:
		return &State{
			Loading: false,
			Error:   a.Message,
			Data:    []Movie{},
		}

	default:
		return prev
	}
}

// Reducer is the signature shared by Reduce and anything wrapping it
type Reducer func(prev *State, action Action) *State

// deref lets callers dispatch pointers to actions as well as values
func deref(action Action) Action {
	switch a := action.(type) {
	case *FetchRequest:
		if a != nil {
			return *a
		}
	case *FetchSuccess:
		if a != nil {
			return *a
		}
	case *LoadMoreSuccess:
		if a != nil {
			return *a
		}
	case *FetchFailure:
		if a != nil {
			return *a
		}
	case *Unrecognized:
		if a != nil {
			return *a
		}
	default:
		return action
	}
	return nil
}
