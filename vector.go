package vector

import (
	"fmt"
	"slices"

	"github.com/jblondin/vector/nat"
)

//go:generate go run ./internal/cmd/natgen -root .

// Vector is a fixed-length sequence whose length L is a type-level natural.
//
// L is phantom: it influences type checking only and occupies no storage.
// The backing store is owned exclusively by the Vector; the only aliases
// handed out are element pointers from the Ref accessors.
//
// The zero value of Vector[T, L] reports length L while holding no elements.
// Use Of*, Repeat or FromSlice to obtain a vector whose storage matches its
// declared length.
type Vector[T any, L nat.Nat] struct {
	inner []T
}

// FromSlice builds a Vector of length L from a runtime sequence.
//
// The sequence's size is validated against L; a disagreement is reported as
// an *ErrLengthMismatch instead of producing a vector whose Len disagrees
// with its storage. The elements are copied, so the caller keeps ownership
// of elems.
func FromSlice[L nat.Nat, T any](elems []T) (Vector[T, L], error) {
	want := nat.Value[L]()
	if len(elems) != want {
		return Vector[T, L]{}, &ErrLengthMismatch{Expected: want, Actual: len(elems)}
	}
	return Vector[T, L]{inner: slices.Clone(elems)}, nil
}

// MustFromSlice is FromSlice that panics on a length mismatch.
func MustFromSlice[L nat.Nat, T any](elems []T) Vector[T, L] {
	v, err := FromSlice[L](elems)
	if err != nil {
		panic(err)
	}
	return v
}

// Wrap asserts the type-level length L over elems without validating it and
// without copying.
//
// This is the unchecked construction path: if len(elems) differs from L, the
// resulting vector's Len reports L while the storage holds len(elems)
// elements, silently. The vector also shares storage with elems. Prefer
// FromSlice unless the allocation matters and the length is known correct.
func Wrap[L nat.Nat, T any](elems []T) Vector[T, L] {
	return Vector[T, L]{inner: elems}
}

// Repeat builds a Vector of length L holding independent copies of elem.
//
// The store is built to size by construction, so the length invariant holds
// unconditionally.
func Repeat[L nat.Nat, T any](elem T) Vector[T, L] {
	inner := make([]T, nat.Value[L]())
	for i := range inner {
		inner[i] = elem
	}
	return Vector[T, L]{inner: inner}
}

// Len reports the declared length. The value is derived from the type
// parameter alone; the backing store is not consulted.
func (v Vector[T, L]) Len() int {
	return nat.Value[L]()
}

// Clone returns a Vector with an independent copy of the backing store.
func (v Vector[T, L]) Clone() Vector[T, L] {
	return Vector[T, L]{inner: slices.Clone(v.inner)}
}

// String renders the elements alongside the declared length.
func (v Vector[T, L]) String() string {
	return fmt.Sprintf("Vector{inner: %v, length: %d}", v.inner, v.Len())
}
