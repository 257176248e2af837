package vector

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/jblondin/vector/nat"
)

// Golden fixtures live in testdata/golden. Refresh with:
//
//	go test -run TestDebugRenderGolden -update
func TestDebugRenderGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	v := Of3(1, 3, 4)
	g.Assert(t, "debug_render_literal", []byte(v.String()))

	w := Repeat[nat.N4]("x")
	g.Assert(t, "debug_render_repeat", []byte(w.String()))
}
