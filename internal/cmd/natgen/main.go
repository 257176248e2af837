// Package main is a code generator for the type-level tables of the vector
// module. It emits the nat marker types with their ordering evidence, the
// indexed accessors, and the literal-list constructors, up to configured
// bounds.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	verbose = flag.Bool("v", false, "verbose output")
	maxLen  = flag.Int("max-len", 32, "largest supported type-level length")
	maxOf   = flag.Int("max-of", 16, "largest literal constructor arity")
	root    = flag.String("root", ".", "repository root to write into")
)

const header = "// Code generated by internal/cmd/natgen. DO NOT EDIT.\n\n"

func main() {
	flag.Parse()

	if *maxLen < 1 {
		fmt.Fprintln(os.Stderr, "-max-len must be at least 1")
		os.Exit(1)
	}
	if *maxOf < 1 || *maxOf > *maxLen {
		fmt.Fprintln(os.Stderr, "-max-of must be between 1 and -max-len")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	gen := &Generator{
		MaxLen: *maxLen,
		MaxOf:  *maxOf,
		Root:   *root,
		Logger: logger,
	}

	if err := gen.Generate(); err != nil {
		logger.Error("generate failed", "error", err)
		os.Exit(1)
	}

	logger.Info("generated type-level tables",
		"max_len", gen.MaxLen,
		"max_of", gen.MaxOf,
	)
}

// Generator emits the generated source files for the configured bounds.
type Generator struct {
	MaxLen int
	MaxOf  int
	Root   string
	Logger *slog.Logger
}

// Generate writes all output files under Root.
func (g *Generator) Generate() error {
	outputs := []struct {
		path string
		emit func() []byte
	}{
		{path: filepath.Join("nat", "nat_gen.go"), emit: g.natFile},
		{path: "at_gen.go", emit: g.atFile},
		{path: "of_gen.go", emit: g.ofFile},
	}

	var eg errgroup.Group
	for _, out := range outputs {
		out := out
		eg.Go(func() error {
			path := filepath.Join(g.Root, out.path)
			if err := os.WriteFile(path, out.emit(), 0o600); err != nil {
				return fmt.Errorf("write %s: %w", out.path, err)
			}
			g.Logger.Debug("wrote file", "path", path)
			return nil
		})
	}

	return eg.Wait()
}

// natFile emits the marker types N0..NMaxLen, the closed Nat union, and the
// AtLeast1..AtLeastMaxLen evidence unions.
func (g *Generator) natFile() []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package nat\n")

	for k := 0; k <= g.MaxLen; k++ {
		fmt.Fprintf(&buf, "\n// N%d is the type-level natural %d.\ntype N%d [%d]struct{}\n", k, k, k, k)
	}

	buf.WriteString("\n// Nat is the closed family of type-level naturals. The union names each\n")
	buf.WriteString("// member exactly, so array types declared outside this package never\n")
	buf.WriteString("// satisfy it, whatever their shape.\n")
	fmt.Fprintf(&buf, "type Nat interface {\n\t%s\n}\n", g.union(0))

	for k := 1; k <= g.MaxLen; k++ {
		fmt.Fprintf(&buf, "\n// AtLeast%d holds every natural greater than or equal to %d.\ntype AtLeast%d interface {\n\t%s\n}\n", k, k, k, g.union(k))
	}

	return buf.Bytes()
}

// atFile emits the At/Ref accessor pairs for indexes 0..MaxLen-1.
func (g *Generator) atFile() []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package vector\n\nimport \"github.com/jblondin/vector/nat\"\n")

	for k := 0; k < g.MaxLen; k++ {
		fmt.Fprintf(&buf, "\n// At%d returns the element at index %d. Instantiation requires the vector's\n// length to be at least %d; anything shorter is rejected at compile time.\nfunc At%d[T any, L nat.AtLeast%d](v *Vector[T, L]) T {\n\treturn v.inner[%d]\n}\n", k, k, k+1, k, k+1, k)
		fmt.Fprintf(&buf, "\n// Ref%d returns a pointer to the element at index %d, for in-place mutation.\n// Instantiation requires the vector's length to be at least %d.\nfunc Ref%d[T any, L nat.AtLeast%d](v *Vector[T, L]) *T {\n\treturn &v.inner[%d]\n}\n", k, k, k+1, k, k+1, k)
	}

	return buf.Bytes()
}

// ofFile emits the literal-list constructors Of1..OfMaxOf. The arity is the
// derived length, which is how the counting recursion of the original design
// surfaces in generated form.
func (g *Generator) ofFile() []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package vector\n\nimport \"github.com/jblondin/vector/nat\"\n")

	for n := 1; n <= g.MaxOf; n++ {
		params := make([]string, n)
		for i := range params {
			params[i] = fmt.Sprintf("e%d", i)
		}
		args := strings.Join(params, ", ")
		noun := "elements"
		if n == 1 {
			noun = "element"
		}
		fmt.Fprintf(&buf, "\n// Of%d builds a Vector of length %d from a literal list of %d %s.\nfunc Of%d[T any](%s T) Vector[T, nat.N%d] {\n\treturn Vector[T, nat.N%d]{inner: []T{%s}}\n}\n", n, n, n, noun, n, args, n, n, args)
	}

	return buf.Bytes()
}

// union renders the union of naturals from..MaxLen.
func (g *Generator) union(from int) string {
	terms := make([]string, 0, g.MaxLen-from+1)
	for k := from; k <= g.MaxLen; k++ {
		terms = append(terms, fmt.Sprintf("N%d", k))
	}
	return strings.Join(terms, " | ")
}
