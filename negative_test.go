package vector

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The bounds check is a type-checking fact, so its failure mode cannot be
// expressed as a runtime test. Instead the fixtures under testdata/negative
// are handed to the compiler and the build is required to fail.
func TestOutOfRangeIndexDoesNotCompile(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns the go toolchain")
	}

	cmd := exec.Command("go", "build", "-tags", "negative", "./testdata/negative")
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "negative fixture compiled but must be rejected:\n%s", out)
	assert.Contains(t, string(out), "does not satisfy")
}
