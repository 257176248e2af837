//go:build negative

// Package negative collects programs that must be rejected by the type
// checker. It is built explicitly with the negative tag by
// TestOutOfRangeIndexDoesNotCompile and never takes part in a regular build.
package negative

import (
	"github.com/jblondin/vector"
)

// Indexing past the declared length has no valid instantiation: nat.N3 does
// not satisfy nat.AtLeast4.
func indexOutOfRange() int {
	v := vector.Of3(1, 3, 4)
	return vector.At3(&v)
}

// A home-made length type does not satisfy the closed nat.Nat union, so a
// natural cannot be forged outside the nat package.
type forgedLength [3]struct{}

func forgeNat() int {
	v := vector.Repeat[forgedLength](0)
	return v.Len()
}
