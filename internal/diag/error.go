package diag

import (
	"errors"
	"fmt"
)

// Error is a terminal configuration error. The message is self-contained:
// it names the role, the path or family involved, and both the observed and
// the required values, because it is the only diagnostic surface the user
// gets. The first Error produced aborts the whole run.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the diagnostic code carried by err, or UnknownCode when err
// is not a diag.Error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
