// Package abi defines the extraction primitive behind captured exceptions.
//
// An Extractor takes a value handed to panic (or any failure value) and
// places it in storage that exposes two things: the exact runtime type of
// the value and an untyped pointer to it. Everything above this package
// reads captured values only through an Object, so a different storage
// layout can be plugged in without touching the matching or dispatch code.
//
// Reflect is the portable default. It copies the value into private,
// addressable storage allocated with reflect.New.
package abi

import (
	"errors"
	"reflect"
	"unsafe"
)

// ErrNotAddressable is returned by NewObject when the storage cannot be
// addressed. Typed views into an Object point into its storage, so the
// storage must be addressable.
var ErrNotAddressable = errors.New("abi: object storage is not addressable")

// Extractor places a failure value into inspectable storage.
type Extractor interface {
	// Extract stores v and returns the resulting Object.
	// A nil v yields the zero Object.
	Extract(v any) Object
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(v any) Object

// Extract calls f(v).
func (f ExtractorFunc) Extract(v any) Object {
	return f(v)
}

// Object is a stored failure value.
//
// The zero Object stores nothing. A non-zero Object is never modified by
// this package after construction.
type Object struct {
	typ     reflect.Type
	storage reflect.Value
}

// NewObject wraps addressable storage as an Object. The Object's runtime
// type is the storage's type.
func NewObject(storage reflect.Value) (Object, error) {
	if !storage.IsValid() {
		return Object{}, nil
	}
	if !storage.CanAddr() {
		return Object{}, ErrNotAddressable
	}
	return Object{typ: storage.Type(), storage: storage}, nil
}

// IsZero reports whether o stores nothing.
func (o Object) IsZero() bool {
	return o.typ == nil
}

// Type returns the exact runtime type of the stored value.
// Returns nil for the zero Object.
func (o Object) Type() reflect.Type {
	return o.typ
}

// Pointer returns the address of the stored value. The pointer addresses a
// value of exactly Type(), never a sub-object.
// Returns nil for the zero Object.
func (o Object) Pointer() unsafe.Pointer {
	if o.IsZero() {
		return nil
	}
	return o.storage.Addr().UnsafePointer()
}

// Value returns the addressable storage.
// Returns the invalid reflect.Value for the zero Object.
func (o Object) Value() reflect.Value {
	return o.storage
}

// Indirect reports whether the stored value is itself a pointer, in which
// case the object it refers to lives outside the storage.
func (o Object) Indirect() bool {
	return o.typ != nil && o.typ.Kind() == reflect.Pointer
}
