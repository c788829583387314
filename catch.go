package exception

import (
	"reflect"

	"github.com/jmgilman/go/exception/abi"
)

// requestKind distinguishes the two ways a handler can ask for a value.
type requestKind uint8

const (
	// byReference asks for the captured value itself, or a part of it,
	// viewed as T.
	byReference requestKind = iota

	// byPointer asks for a captured *E viewed as *T.
	byPointer
)

// request is the type-erased description of a requested type.
type request struct {
	target reflect.Type
	kind   requestKind
}

func requestFor[T any](kind requestKind) request {
	return request{target: reflect.TypeFor[T](), kind: kind}
}

func (r request) String() string {
	if r.target == nil {
		return "<nil>"
	}
	if r.kind == byPointer {
		return "*" + r.target.String()
	}
	return r.target.String()
}

// isCatchAll reports whether the requested type accepts every value.
func (r request) isCatchAll() bool {
	return r.target != nil && r.target.Kind() == reflect.Interface && r.target.NumMethod() == 0
}

// match returns a *target view into obj, or false.
func (r request) match(obj abi.Object) (reflect.Value, bool) {
	if obj.IsZero() || r.target == nil {
		return reflect.Value{}, false
	}
	if r.kind == byPointer {
		return matchPointer(obj.Value(), r.target)
	}
	return matchReference(obj.Value(), r.target)
}

// matchReference applies the reference rules: exact type, implemented
// interface, then a unique exported embedded field.
func matchReference(v reflect.Value, target reflect.Type) (reflect.Value, bool) {
	rt := v.Type()
	if rt == target {
		return v.Addr(), true
	}

	if target.Kind() == reflect.Interface {
		if !rt.Implements(target) {
			return reflect.Value{}, false
		}
		view := reflect.New(target)
		view.Elem().Set(v)
		return view, true
	}

	path, ok := basePath(rt, target)
	if !ok {
		return reflect.Value{}, false
	}
	return followPath(v, path, target)
}

// matchPointer applies the pointer rules. The stored value must be a *E with
// E equal to target or embedding it.
func matchPointer(v reflect.Value, target reflect.Type) (reflect.Value, bool) {
	rt := v.Type()
	if rt.Kind() != reflect.Pointer || target.Kind() == reflect.Interface {
		return reflect.Value{}, false
	}

	if rt.Elem() == target {
		return v, true
	}

	path, ok := basePath(rt.Elem(), target)
	if !ok {
		return reflect.Value{}, false
	}
	if v.IsNil() {
		return reflect.Zero(reflect.PointerTo(target)), true
	}
	return followPath(v.Elem(), path, target)
}

// TryCatch reports whether e's captured value can be viewed as a T and, if
// so, returns a pointer to it. The rules mirror a catch clause taking T by
// reference:
//
//   - the captured value's type is exactly T;
//   - T is an interface the captured value implements, in which case the
//     view holds the captured value;
//   - the captured value is a struct with a unique exported embedded field
//     of type T or *T at the shallowest depth, in which case the view
//     points at that field.
//
// A captured *E is not viewed as E; use TryCatchPointer for that. The
// returned pointer is never nil when ok is true. An empty handle never
// matches.
//
// The view points into storage shared by every copy of e. Treat it as
// read-only.
func TryCatch[T any](e Exception) (*T, bool) {
	return tryCatch[T](e, byReference)
}

// TryCatchPointer reports whether e's captured value is a *E where E is T
// or embeds T, and returns it as a *T. When E embeds T the returned pointer
// addresses the embedded field inside the captured pointee. A nil *E of a
// compatible type matches and yields a nil *T. Interface types never match.
func TryCatchPointer[T any](e Exception) (*T, bool) {
	return tryCatch[T](e, byPointer)
}

func tryCatch[T any](e Exception, kind requestKind) (*T, bool) {
	if e.obj == nil {
		return nil, false
	}

	view, ok := requestFor[T](kind).match(e.obj.stored)
	if !ok {
		return nil, false
	}
	return view.Interface().(*T), true
}

// CatchAll reports whether e holds any captured value.
func CatchAll(e Exception) bool {
	return e.obj != nil
}
