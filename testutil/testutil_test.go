package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntsReproducible(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.Ints(8, 100)
	assert.Len(t, a, 8)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}

	rng.Reset()
	b := rng.Ints(8, 100)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}
