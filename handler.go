package exception

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
)

// Void is the result type of handlers that produce no value.
type Void = struct{}

// Handler is one candidate in a dispatch call: a requested type and a body
// that receives the matching view.
//
// Handlers are built with Case, CasePointer, Do and DoPointer. A Handler that
// failed construction carries the error (see Err) and makes every dispatch
// call it takes part in panic before any handler is tried.
type Handler[R any] struct {
	req    request
	invoke func(view reflect.Value) R
	err    *Error
}

// Case returns a handler for values that can be viewed as a T (see
// TryCatch). fn receives a non-nil *T.
//
//	exception.Case(func(e *NotFoundError) string { return e.Resource })
func Case[T, R any](fn func(*T) R) Handler[R] {
	return newHandler(byReference, fn)
}

// CasePointer returns a handler for captured pointers whose pointee is or
// embeds a T (see TryCatchPointer).
func CasePointer[T, R any](fn func(*T) R) Handler[R] {
	return newHandler(byPointer, fn)
}

// Do is Case for handlers without a result.
func Do[T any](fn func(*T)) Handler[Void] {
	return newHandler(byReference, voidBody(fn))
}

// DoPointer is CasePointer for handlers without a result.
func DoPointer[T any](fn func(*T)) Handler[Void] {
	return newHandler(byPointer, voidBody(fn))
}

func voidBody[T any](fn func(*T)) func(*T) Void {
	if fn == nil {
		return nil
	}
	return func(v *T) Void {
		fn(v)
		return Void{}
	}
}

func newHandler[T, R any](kind requestKind, fn func(*T) R) Handler[R] {
	h := Handler[R]{req: requestFor[T](kind)}

	switch {
	case h.req.isCatchAll():
		h.err = newErrorf(KindInvalidHandlerSignature,
			"catch-all type %s cannot be used as a handler argument", h.req).
			withContext("type", h.req.String())
	case kind == byPointer && h.req.target.Kind() == reflect.Interface:
		h.err = newErrorf(KindInvalidHandlerSignature,
			"pointer request for interface type %s can never match", h.req.target).
			withContext("type", h.req.String())
	case fn == nil:
		h.err = newErrorf(KindInvalidHandlerSignature, "handler for %s has a nil body", h.req).
			withContext("type", h.req.String())
	default:
		h.invoke = func(view reflect.Value) R {
			return fn(view.Interface().(*T))
		}
	}

	return h
}

// Type returns the declared argument type. For pointer handlers this is
// the pointee type. Returns nil for the zero Handler.
func (h Handler[R]) Type() reflect.Type {
	return h.req.target
}

// Err returns the construction error, or nil if h is usable.
func (h Handler[R]) Err() error {
	if err := h.validate(); err != nil {
		return err
	}
	return nil
}

// String describes the handler's request, such as "*pkg.Error" for a
// pointer handler.
func (h Handler[R]) String() string {
	return h.req.String()
}

func (h Handler[R]) validate() *Error {
	if h.err != nil {
		return h.err
	}
	if h.req.target == nil || h.invoke == nil {
		return newError(KindInvalidHandlerSignature, "handler is not initialized")
	}
	return nil
}

// Validate checks a handler list before it is used for dispatch and reports
// every invalid handler, each tagged with its index. Returns nil if all
// handlers are usable.
//
//	handlers := buildHandlers(cfg)
//	if err := exception.Validate(handlers...); err != nil {
//	    return err
//	}
func Validate[R any](handlers ...Handler[R]) error {
	var result *multierror.Error
	for i, h := range handlers {
		if err := h.validate(); err != nil {
			result = multierror.Append(result, err.withContext("index", i))
		}
	}
	return result.ErrorOrNil()
}

func mustValidate[R any](handlers []Handler[R]) {
	if err := Validate(handlers...); err != nil {
		panic(err)
	}
}
