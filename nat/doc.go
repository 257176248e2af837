// Package nat encodes small natural numbers at the type level.
//
// Each supported integer K has a distinct zero-sized marker type NK, defined
// as the array type [K]struct{} so that the integer is recoverable from the
// type itself. The Nat constraint is the closed union of these markers: it
// lists the named types exactly, which makes the family unforgeable — an
// array type declared elsewhere, or a runtime integer, can never stand in
// for a type-level natural.
//
// Ordering is encoded by the generated AtLeastK constraints: AtLeastK admits
// exactly the naturals NK and above. A function constrained on AtLeast(J+1)
// therefore holds a compile-time proof that index J is in bounds, with no
// runtime comparison anywhere.
//
// The tables in nat_gen.go are produced by internal/cmd/natgen; regenerate
// with a larger -max-len to raise the bound.
package nat
