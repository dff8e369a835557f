package trending

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAction indicates the envelope itself could not be read
	ErrMalformedAction = errors.New("malformed action")
	// ErrInvalidPayload indicates a recognized action carried an unusable payload
	ErrInvalidPayload = errors.New("invalid action payload")
	// ErrNilAction is returned when encoding a nil action
	ErrNilAction = errors.New("nil action")
)

// DecodeError describes why an action envelope could not be decoded
type DecodeError struct {
	Type   ActionType
	Reason string
	Kind   error // ErrMalformedAction or ErrInvalidPayload
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("decode %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("decode action: %s", e.Reason)
}

func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
