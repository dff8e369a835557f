package source

import (
	"errors"
	"fmt"
)

// ErrEmptyExport is returned when a Radarr export holds no movies
var ErrEmptyExport = errors.New("radarr export contains no movies")

// ErrStdinRepeated is returned when "-" is passed more than once to LoadActionLogs
var ErrStdinRepeated = errors.New("standard input can only be read once")

// LineError ties a decode failure to its position in an action log
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
