package exception_test

import "fmt"

// BaseFailure is embedded by the other failure types the way a base class
// is inherited.
type BaseFailure struct {
	Message string
}

func (b BaseFailure) Error() string {
	return b.Message
}

// DerivedFailure embeds BaseFailure at a non-zero offset.
type DerivedFailure struct {
	Code int
	BaseFailure
}

// Left and Right both embed BaseFailure; Diamond embeds both, so
// BaseFailure is ambiguous inside Diamond.
type Left struct {
	Side string
	BaseFailure
}

type Right struct {
	Side string
	BaseFailure
}

type Diamond struct {
	Left
	Right
}

// Shadowing has BaseFailure at depth one and again at depth two.
type Shadowing struct {
	Left
	BaseFailure
}

// ViaPointer embeds its base through a pointer.
type ViaPointer struct {
	Extra string
	*BaseFailure
}

type hiddenBase struct {
	Message string
}

// WithHiddenBase embeds an unexported type.
type WithHiddenBase struct {
	hiddenBase
}

// CycleA and CycleB embed each other through pointers.
type CycleA struct {
	*CycleB
}

type CycleB struct {
	*CycleA
}

type TypeA struct {
	A int
}

type TypeB struct {
	B int
}

type Unrelated struct {
	Note string
}

// Stringer is a non-error interface used for interface matching.
type Stringer interface {
	String() string
}

type Named struct {
	Name string
}

func (n Named) String() string {
	return fmt.Sprintf("named(%s)", n.Name)
}
