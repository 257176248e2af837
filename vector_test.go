package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jblondin/vector/nat"
	"github.com/jblondin/vector/testutil"
)

func TestOfLiteralConstruction(t *testing.T) {
	v := Of3(1, 3, 4)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, At0(&v))
	assert.Equal(t, 3, At1(&v))
	assert.Equal(t, 4, At2(&v))
	// assert.Equal(t, 4, At3(&v)) // won't compile; see testdata/negative
}

func TestRepeat(t *testing.T) {
	v := Repeat[nat.N3](1)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, At0(&v))
	assert.Equal(t, 1, At1(&v))
	assert.Equal(t, 1, At2(&v))
}

func TestRepeatElementsAreIndependent(t *testing.T) {
	v := Repeat[nat.N2](7)

	*Ref0(&v) = 8
	assert.Equal(t, 8, At0(&v))
	assert.Equal(t, 7, At1(&v))
}

func TestFromSlice(t *testing.T) {
	src := []int{1, 3, 4}
	v, err := FromSlice[nat.N3](src)
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, At0(&v))
	assert.Equal(t, 3, At1(&v))
	assert.Equal(t, 4, At2(&v))

	// FromSlice copies: the caller's slice stays independent.
	src[0] = 99
	assert.Equal(t, 1, At0(&v))
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice[nat.N3]([]int{1, 2})
	require.Error(t, err)

	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 3, lm.Expected)
	assert.Equal(t, 2, lm.Actual)
	assert.Equal(t, "length mismatch: expected 3 elements, got 2", err.Error())
}

func TestMustFromSlice(t *testing.T) {
	v := MustFromSlice[nat.N2]([]string{"a", "b"})
	assert.Equal(t, "b", At1(&v))

	assert.Panics(t, func() {
		MustFromSlice[nat.N3]([]string{"a"})
	})
}

// Wrap is the unchecked construction path: a size disagreement is not
// rejected, and the reported length diverges from the actual storage. The
// divergence is the documented contract, asserted here explicitly.
func TestWrapUncheckedDivergence(t *testing.T) {
	v := Wrap[nat.N3]([]int{1, 2})

	assert.Equal(t, 3, v.Len())
	assert.Len(t, v.inner, 2)
}

func TestRefMutation(t *testing.T) {
	v := Of2("a", "b")

	*Ref1(&v) = "c"
	assert.Equal(t, "a", At0(&v))
	assert.Equal(t, "c", At1(&v))
}

func TestClone(t *testing.T) {
	v := Of3(1, 2, 3)
	c := v.Clone()

	*Ref0(&v) = 9
	assert.Equal(t, 9, At0(&v))
	assert.Equal(t, 1, At0(&c))
}

func TestZeroLength(t *testing.T) {
	v := Repeat[nat.N0](0)
	assert.Equal(t, 0, v.Len())

	w, err := FromSlice[nat.N0]([]int(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, w.Len())
}

func TestString(t *testing.T) {
	v := Of3(1, 3, 4)
	assert.Equal(t, "Vector{inner: [1 3 4], length: 3}", v.String())

	w := Repeat[nat.N0](0)
	assert.Equal(t, "Vector{inner: [], length: 0}", w.String())
}

func TestFromSliceRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < 100; i++ {
		elems := rng.Ints(4, 1000)
		v, err := FromSlice[nat.N4](elems)
		require.NoError(t, err)

		assert.Equal(t, elems[0], At0(&v))
		assert.Equal(t, elems[1], At1(&v))
		assert.Equal(t, elems[2], At2(&v))
		assert.Equal(t, elems[3], At3(&v))
	}
}
