package errors

import (
	"strings"

	"bytekit/internal/serial"
)

// Error is an error object with underlying error.
type Error struct {
	prefix  []interface{}
	message []interface{}
	inner   error
}

// Error implements error.Error().
func (err *Error) Error() string {
	builder := strings.Builder{}
	for _, prefix := range err.prefix {
		builder.WriteByte('[')
		builder.WriteString(serial.ToString(prefix))
		builder.WriteString("] ")
	}

	msg := serial.Concat(err.message...)
	builder.WriteString(msg)

	if err.inner != nil {
		builder.WriteString(" > ")
		builder.WriteString(err.inner.Error())
	}

	return builder.String()
}

// Base sets the underlying error and returns err itself.
func (err *Error) Base(e error) *Error {
	err.inner = e
	return err
}

// Unwrap returns the underlying error, so that errors.Is and errors.As
// see through the message wrapping.
func (err *Error) Unwrap() error {
	return err.inner
}

// WithPrefix prepends a bracketed prefix to the rendered message.
func (err *Error) WithPrefix(prefix ...interface{}) *Error {
	err.prefix = append(prefix, err.prefix...)
	return err
}

// String returns the string representation of this error.
func (err *Error) String() string {
	return err.Error()
}

// NewError returns a new error object with message formed from given arguments.
func NewError(msg ...interface{}) *Error {
	return &Error{
		message: msg,
	}
}
