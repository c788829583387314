package exception

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/jmgilman/go/exception/abi"
)

// Exception is an opaque handle to a captured failure value.
//
// The zero value is the empty handle. A non-empty handle refers to exactly
// one captured value for its whole lifetime. Copies share the captured value;
// it stays alive for as long as any handle or typed view refers to it.
// Exception is safe for concurrent use because the captured value is never
// modified after capture.
type Exception struct {
	obj *object
}

type object struct {
	id         uuid.UUID
	value      any
	stored     abi.Object
	stack      []byte
	capturedAt time.Time
}

// Capture captures v, typically the result of recover.
// Returns the empty handle if v is nil. Capturing an Exception returns it
// unchanged.
//
//	defer func() {
//	    if ex := exception.Capture(recover()); !ex.IsEmpty() {
//	        failures <- ex
//	    }
//	}()
func Capture(v any) Exception {
	return capture(abi.Reflect, v)
}

// CaptureWith captures v using a specific extraction primitive.
// A nil extractor falls back to abi.Reflect.
func CaptureWith(x abi.Extractor, v any) Exception {
	if x == nil {
		x = abi.Reflect
	}
	return capture(x, v)
}

func capture(x abi.Extractor, v any) Exception {
	if v == nil {
		return Exception{}
	}
	if ex, ok := v.(Exception); ok {
		return ex
	}

	stored := x.Extract(v)
	if stored.IsZero() {
		return Exception{}
	}

	return Exception{obj: &object{
		id:         uuid.New(),
		value:      v,
		stored:     stored,
		stack:      debug.Stack(),
		capturedAt: time.Now(),
	}}
}

// Try runs fn and captures any panic it raises.
// Returns the empty handle if fn returns normally.
//
//	ex := exception.Try(func() {
//	    parse(input)
//	})
func Try(fn func()) (ex Exception) {
	defer func() {
		if r := recover(); r != nil {
			ex = Capture(r)
		}
	}()

	fn()
	return Exception{}
}

// FromError captures err without a panic.
// Returns the empty handle if err is nil.
func FromError(err error) Exception {
	if err == nil {
		return Exception{}
	}
	return Capture(err)
}

// Rethrow panics with the captured value, as if the original panic were
// raised again. It panics with ErrEmptyHandle if e is empty.
func Rethrow(e Exception) {
	if e.obj == nil {
		panic(ErrEmptyHandle)
	}
	panic(e.obj.value)
}

// IsEmpty reports whether e refers to no captured value.
func (e Exception) IsEmpty() bool {
	return e.obj == nil
}

// Same reports whether e and other refer to the same captured value.
// Two empty handles are the same.
func (e Exception) Same(other Exception) bool {
	return e.obj == other.obj
}

// Type returns the exact runtime type of the captured value.
// Returns ErrEmptyHandle if e is empty.
func (e Exception) Type() (reflect.Type, error) {
	if e.obj == nil {
		return nil, ErrEmptyHandle
	}
	return e.obj.stored.Type(), nil
}

// RawPointer returns an untyped pointer to the captured value's storage.
// The storage holds a value of exactly the type reported by Type, so consult
// Type before converting the pointer.
// Returns ErrEmptyHandle if e is empty.
func (e Exception) RawPointer() (unsafe.Pointer, error) {
	if e.obj == nil {
		return nil, ErrEmptyHandle
	}
	return e.obj.stored.Pointer(), nil
}

// Value returns the captured value as it was passed to Capture.
// Returns nil if e is empty.
func (e Exception) Value() any {
	if e.obj == nil {
		return nil
	}
	return e.obj.value
}

// ID returns the identifier assigned at capture time.
// Returns uuid.Nil if e is empty.
func (e Exception) ID() uuid.UUID {
	if e.obj == nil {
		return uuid.Nil
	}
	return e.obj.id
}

// Stack returns a copy of the stack trace recorded at capture time.
func (e Exception) Stack() []byte {
	if e.obj == nil {
		return nil
	}
	stack := make([]byte, len(e.obj.stack))
	copy(stack, e.obj.stack)
	return stack
}

// CapturedAt returns the capture time.
func (e Exception) CapturedAt() time.Time {
	if e.obj == nil {
		return time.Time{}
	}
	return e.obj.capturedAt
}

// Err returns the captured value as an error. Values that are not errors
// are returned as a *PanicError. Returns nil if e is empty.
func (e Exception) Err() error {
	if e.obj == nil {
		return nil
	}
	if err, ok := e.obj.value.(error); ok {
		return err
	}
	return &PanicError{Value: e.obj.value, Stack: e.Stack()}
}

// String returns "<type>: <value>".
func (e Exception) String() string {
	if e.obj == nil {
		return "<empty exception>"
	}
	return fmt.Sprintf("%s: %v", e.obj.stored.Type(), e.obj.value)
}
