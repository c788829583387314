// Package exception inspects and dispatches captured failures by type.
//
// A failure is any value handed to panic, or an error. Once captured into an
// Exception it outlives the stack that raised it and can be passed around,
// stored and inspected later. Inspection never re-panics: matching is a
// direct read of the captured value.
//
// # Features
//
//   - Opaque, copyable, concurrency-safe Exception handles
//   - Low-level access to the exact runtime type and raw storage
//   - Typed extraction with catch-clause rules (TryCatch, TryCatchPointer)
//   - Ordered, first-match-wins handler dispatch (Handle, Run)
//   - Fatal dispatch that reports and terminates when nothing matches
//     (HandleOrTerminate, RunOrTerminate)
//   - Pluggable termination reporting with console, log and JSON/YAML output
//
// # Capturing
//
//	ex := exception.Try(func() {
//	    mustLoad(path)
//	})
//
//	// or inside an existing deferred recover
//	defer func() {
//	    ex := exception.Capture(recover())
//	    ...
//	}()
//
//	// or from an error
//	ex := exception.FromError(err)
//
// # Matching rules
//
// A handler asks for a type T either by reference (TryCatch, Case, Do) or by
// pointer (TryCatchPointer, CasePointer, DoPointer).
//
// A reference request matches when the captured value's runtime type is
// exactly T, when T is an interface the value implements, or when the value
// is a struct embedding T (or *T) as an exported field. Embedded fields are
// searched breadth-first with Go's promotion rules: the shallowest match wins
// and two matches at the same depth are ambiguous, which is no match. The
// view of an embedded field points at that field, not at the outer value.
//
// A pointer request matches a captured *E when E is T or embeds T.
//
// An empty Exception never matches. Not matching is never an error.
//
// # Dispatch
//
// Handlers are tried in the order given and the first match wins:
//
//	msg, ok := exception.Handle(ex,
//	    exception.CasePointer(func(e *ValidationError) string { return e.Field }),
//	    exception.Case(func(e *error) string { return (*e).Error() }),
//	)
//
// A handler for a type listed before a handler for a type embedding it
// shadows the second one. Order handlers from most to least specific.
//
// Catch-all handlers are not allowed: a handler whose argument type is the
// empty interface is rejected with ErrInvalidHandlerSignature. Use Validate
// to check handler lists where they are assembled; Handle and
// HandleOrTerminate panic on an invalid list before trying any handler.
//
// # Termination
//
// HandleOrTerminate calls Terminate when no handler matches. Terminate marks
// the exception active (see Active), hands a Report to the process-wide
// Terminator's Reporter, and exits with DefaultExitCode. Install a
// differently configured Terminator with SetTerminator:
//
//	exception.SetTerminator(exception.NewTerminator(
//	    exception.WithLogger(logger),
//	    exception.WithExitCode(70),
//	))
//
// # Low-level access
//
// Exception.Type and Exception.RawPointer expose the exact runtime type and
// the address of the captured value's storage. Both return ErrEmptyHandle on
// an empty handle. The storage layout comes from an abi.Extractor;
// CaptureWith selects one explicitly.
package exception
