package exception

// ErrorKind identifies the kind of failure reported by this package.
// Kinds are string-based for debuggability and natural JSON serialization.
type ErrorKind string

const (
	// KindEmptyHandle indicates a low-level accessor was called on an
	// Exception that refers to nothing.
	KindEmptyHandle ErrorKind = "EMPTY_HANDLE"

	// KindInvalidHandlerSignature indicates a handler cannot take part in
	// dispatch: its argument type is a catch-all, its request can never
	// match, or its body is missing.
	KindInvalidHandlerSignature ErrorKind = "INVALID_HANDLER_SIGNATURE"

	// KindUnhandledFatal marks the terminal condition of fatal dispatch.
	// It only ever appears in termination reports.
	KindUnhandledFatal ErrorKind = "UNHANDLED_FATAL"

	// KindInternal indicates an internal failure, such as a report that
	// could not be encoded.
	KindInternal ErrorKind = "INTERNAL_ERROR"

	// KindUnknown is returned by KindOf for errors not created by this package.
	KindUnknown ErrorKind = "UNKNOWN"
)

// String returns the kind as a string.
func (k ErrorKind) String() string {
	return string(k)
}
