package exception

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrEmptyHandle is returned when a low-level accessor is used on an
	// empty Exception. Match it with errors.Is.
	ErrEmptyHandle = newError(KindEmptyHandle, "exception handle is empty")

	// ErrInvalidHandlerSignature matches every handler construction error.
	ErrInvalidHandlerSignature = newError(KindInvalidHandlerSignature, "invalid handler signature")
)

// Error reports a misuse of this package: reading an empty handle, or
// dispatching with a handler that can never run. A failed match is not an
// Error. Values are never modified after they are returned.
type Error struct {
	kind    ErrorKind
	message string
	context map[string]interface{}
	cause   error
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func newErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

func wrapError(err error, kind ErrorKind, message string) *Error {
	return &Error{kind: kind, message: message, cause: err}
}

// Error formats e with its kind in brackets, for example
// "[INVALID_HANDLER_SIGNATURE] handler for int has a nil body". A cause,
// such as an encoding failure behind KindInternal, is appended after a colon.
func (e *Error) Error() string {
	msg := "[" + string(e.kind) + "] " + e.message
	if e.cause == nil {
		return msg
	}
	return msg + ": " + e.cause.Error()
}

// Kind returns the error kind.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Message returns the error message without the kind prefix.
func (e *Error) Message() string {
	return e.message
}

// Context returns the details recorded with e, such as the "type" a
// handler declared and its "index" in a Validate call. The map is a copy;
// it is nil when no details were recorded.
func (e *Error) Context() map[string]interface{} {
	return maps.Clone(e.context)
}

// Unwrap returns the failure behind a KindInternal error, or nil.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind. This lets the
// package sentinels match any error of their kind:
//
//	errors.Is(err, exception.ErrInvalidHandlerSignature)
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}

// withContext returns a copy of e with key set to value.
func (e *Error) withContext(key string, value interface{}) *Error {
	ctx := maps.Clone(e.context)
	if ctx == nil {
		ctx = make(map[string]interface{}, 1)
	}
	ctx[key] = value

	return &Error{
		kind:    e.kind,
		message: e.message,
		context: ctx,
		cause:   e.cause,
	}
}

// errorResponse is the JSON shape of an *Error. The cause chain is left out.
type errorResponse struct {
	Kind    string                 `json:"kind"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// MarshalJSON implements json.Marshaler.
//
//	data, _ := json.Marshal(exception.ErrEmptyHandle)
//	// {"kind":"EMPTY_HANDLE","message":"exception handle is empty"}
func (e *Error) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&errorResponse{
		Kind:    string(e.kind),
		Message: e.message,
		Context: e.context,
	})
	if err != nil {
		return nil, wrapError(err, KindInternal, "failed to marshal error")
	}
	return data, nil
}

// KindOf extracts the ErrorKind from err's chain.
// Returns KindUnknown if err is nil or carries no *Error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindUnknown
}

// IsKind reports whether err's chain carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return errors.Is(err, &Error{kind: kind})
}

// PanicError presents a captured non-error value as an error.
// It is returned by Exception.Err.
type PanicError struct {
	// Value is the value that was passed to panic.
	Value interface{}

	// Stack is the stack trace recorded at capture time.
	Stack []byte
}

// Error returns "panic: <value>".
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}
