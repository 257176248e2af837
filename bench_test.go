package vector

import (
	"testing"

	"github.com/jblondin/vector/nat"
)

// The proved accessors must cost the same as a raw slice index: the bounds
// proof is consumed entirely by the type checker.
func BenchmarkAt(b *testing.B) {
	v := Repeat[nat.N32](1)

	var sink int
	for i := 0; i < b.N; i++ {
		sink += At31(&v)
	}
	_ = sink
}

func BenchmarkSliceIndexBaseline(b *testing.B) {
	s := make([]int, 32)
	s[31] = 1

	var sink int
	for i := 0; i < b.N; i++ {
		sink += s[31]
	}
	_ = sink
}

func BenchmarkRepeat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := Repeat[nat.N32](1)
		_ = v
	}
}
