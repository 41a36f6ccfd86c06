package feed

import (
	"errors"
	"fmt"
)

// ErrNotAuthor is returned when a caller tries to accept an answer on a
// question they did not ask.
var ErrNotAuthor = errors.New("only the question author can accept an answer")

// ValidationError reports rejected input. Handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
