package exception

import "reflect"

// Handle runs the first handler whose requested type matches e's captured
// value and returns its result with true. Handlers are tried in the order
// given and no later handler is looked at once one matches, so a handler
// for a base type listed before one for a type embedding it shadows the
// latter.
//
// If no handler matches, including when the list or e is empty, Handle
// returns the zero R and false. Not matching is not an error.
//
// Handle panics with an error matching ErrInvalidHandlerSignature if any
// handler is invalid, before trying any of them.
//
//	msg, ok := exception.Handle(ex,
//	    exception.CasePointer(func(e *QuotaError) string { return "quota: " + e.Resource }),
//	    exception.Case(func(e *error) string { return (*e).Error() }),
//	)
func Handle[R any](e Exception, handlers ...Handler[R]) (R, bool) {
	mustValidate(handlers)

	if h, view, ok := selectHandler(e, handlers); ok {
		return h.invoke(view), true
	}

	var zero R
	return zero, false
}

// Run is Handle for handlers without a result. It reports whether a handler
// ran.
func Run(e Exception, handlers ...Handler[Void]) bool {
	_, ok := Handle(e, handlers...)
	return ok
}

// HandleOrTerminate is Handle for callers that cannot continue with an
// unhandled failure. It returns the matching handler's result. If no
// handler matches it calls Terminate with e and does not return.
func HandleOrTerminate[R any](e Exception, handlers ...Handler[R]) R {
	mustValidate(handlers)

	if h, view, ok := selectHandler(e, handlers); ok {
		return h.invoke(view)
	}

	Terminate(e)
	panic("exception: terminator returned")
}

// RunOrTerminate is HandleOrTerminate for handlers without a result.
func RunOrTerminate(e Exception, handlers ...Handler[Void]) {
	HandleOrTerminate(e, handlers...)
}

func selectHandler[R any](e Exception, handlers []Handler[R]) (Handler[R], reflect.Value, bool) {
	if e.obj == nil {
		return Handler[R]{}, reflect.Value{}, false
	}

	for _, h := range handlers {
		if view, ok := h.req.match(e.obj.stored); ok {
			return h, view, true
		}
	}

	return Handler[R]{}, reflect.Value{}, false
}
