package convert

import (
	"fmt"
)

// ExitIO is the process exit code for IOError
const ExitIO = 5

// IOError is returned when the source cannot be read or the destination cannot be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Cause allows errors.Cause to walk past the IOError
func (e *IOError) Cause() error {
	return e.Err
}

func (e *IOError) ExitCode() int {
	return ExitIO
}
