package steps

import "fmt"

// InvalidArgumentError reports an input or option whose shape or type does
// not match what a transformation expects. Use errors.As to detect it.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

func invalidArgf(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}
