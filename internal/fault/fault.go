package fault

import (
	"errors"
	"fmt"
)

// Category classifies failures so the top-level command can render one
// labeled diagnostic line and choose an exit status without parsing
// error message text.
type Category string

const (
	// CategoryValidation indicates bad command-line input: non-numeric
	// where a number is required, or a value outside its accepted range.
	CategoryValidation Category = "validation"

	// CategoryConnection indicates the Matter server could not be
	// reached or the WebSocket handshake failed.
	CategoryConnection Category = "connection"

	// CategoryNotFound indicates the node, endpoint, cluster, or
	// attribute does not exist (or the node cannot be resolved).
	CategoryNotFound Category = "not_found"

	// CategoryProtocol indicates a malformed or unexpected server
	// response, including schema-version mismatches.
	CategoryProtocol Category = "protocol"

	// CategoryWriteRejected indicates the server or device refused the
	// write: read-only attribute, out-of-range value, device asleep.
	CategoryWriteRejected Category = "write_rejected"

	// CategoryVerification indicates the post-write read returned a
	// value different from the one written. Fatal only in strict mode.
	CategoryVerification Category = "verification"
)

// Error wraps an underlying error with a category. The category travels
// separately from the message: rendering (labels, hints) is the
// reporter's job, not the error's.
type Error struct {
	Category Category
	Err      error
}

func (e *Error) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying error so errors.Is and errors.As walk
// the full chain through the category wrapper.
func (e *Error) Unwrap() error { return e.Err }

// Validation creates a validation fault: the caller supplied bad input.
func Validation(format string, args ...any) *Error {
	return &Error{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Connection creates a connection fault: server unreachable or handshake failed.
func Connection(format string, args ...any) *Error {
	return &Error{Category: CategoryConnection, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found fault: the addressed node or attribute does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Protocol creates a protocol fault: the server responded in an unexpected way.
func Protocol(format string, args ...any) *Error {
	return &Error{Category: CategoryProtocol, Err: fmt.Errorf(format, args...)}
}

// WriteRejected creates a write-rejected fault: the write was refused.
func WriteRejected(format string, args ...any) *Error {
	return &Error{Category: CategoryWriteRejected, Err: fmt.Errorf(format, args...)}
}

// Verification creates a verification fault: the device reports a value
// other than the one written.
func Verification(format string, args ...any) *Error {
	return &Error{Category: CategoryVerification, Err: fmt.Errorf(format, args...)}
}

// CategoryOf returns the category of err. The second return is false
// when err carries no category (unexpected internal errors).
func CategoryOf(err error) (Category, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Category, true
	}
	return "", false
}
