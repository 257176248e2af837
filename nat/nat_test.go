package nat

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	assert.Equal(t, 0, Value[N0]())
	assert.Equal(t, 1, Value[N1]())
	assert.Equal(t, 2, Value[N2]())
	assert.Equal(t, 3, Value[N3]())
	assert.Equal(t, 16, Value[N16]())
	assert.Equal(t, 31, Value[N31]())
	assert.Equal(t, 32, Value[N32]())
}

func TestMarkersAreZeroSized(t *testing.T) {
	assert.Equal(t, uintptr(0), unsafe.Sizeof(N0{}))
	assert.Equal(t, uintptr(0), unsafe.Sizeof(N3{}))
	assert.Equal(t, uintptr(0), unsafe.Sizeof(N32{}))
}

func atLeast3[L AtLeast3]() int { return Value[L]() }

// Evidence membership is a type-checking fact; instantiating across the
// boundary values is the runtime-visible part of it.
func TestAtLeastEvidence(t *testing.T) {
	assert.Equal(t, 3, atLeast3[N3]())
	assert.Equal(t, 32, atLeast3[N32]())
	// atLeast3[N2]() won't compile: N2 is missing from AtLeast3.
}
