package main

import (
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return &Generator{MaxLen: 32, MaxOf: 16}
}

func parseSource(t *testing.T, name string, src []byte) {
	t.Helper()
	_, err := parser.ParseFile(token.NewFileSet(), name, src, parser.AllErrors)
	require.NoError(t, err)
}

func TestNatFile(t *testing.T) {
	src := newTestGenerator().natFile()
	parseSource(t, "nat_gen.go", src)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by internal/cmd/natgen. DO NOT EDIT."))
	assert.Contains(t, text, "package nat\n")
	assert.Contains(t, text, "type N0 [0]struct{}")
	assert.Contains(t, text, "type N32 [32]struct{}")
	assert.NotContains(t, text, "type N33")
	assert.Contains(t, text, "type Nat interface {")
	assert.Contains(t, text, "type AtLeast1 interface {")
	assert.Contains(t, text, "type AtLeast32 interface {\n\tN32\n}")
	assert.Equal(t, 32, strings.Count(text, "type AtLeast"))
}

func TestAtFile(t *testing.T) {
	src := newTestGenerator().atFile()
	parseSource(t, "at_gen.go", src)

	text := string(src)
	assert.Contains(t, text, "package vector\n")
	assert.Contains(t, text, "func At0[T any, L nat.AtLeast1](v *Vector[T, L]) T {")
	assert.Contains(t, text, "func At31[T any, L nat.AtLeast32](v *Vector[T, L]) T {")
	assert.Contains(t, text, "func Ref31[T any, L nat.AtLeast32](v *Vector[T, L]) *T {")
	assert.NotContains(t, text, "func At32")
	assert.Equal(t, 32, strings.Count(text, "// At"))
	assert.Equal(t, 32, strings.Count(text, "// Ref"))
}

func TestOfFile(t *testing.T) {
	src := newTestGenerator().ofFile()
	parseSource(t, "of_gen.go", src)

	text := string(src)
	assert.Contains(t, text, "func Of1[T any](e0 T) Vector[T, nat.N1] {")
	assert.Contains(t, text, "func Of16[T any](e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15 T) Vector[T, nat.N16] {")
	assert.NotContains(t, text, "func Of0")
	assert.NotContains(t, text, "func Of17")
}

func TestUnion(t *testing.T) {
	g := &Generator{MaxLen: 4}

	assert.Equal(t, "N0 | N1 | N2 | N3 | N4", g.union(0))
	assert.Equal(t, "N4", g.union(4))
}

// The checked-in files must match the generator output exactly; a drift
// means someone edited a generated file or changed the templates without
// regenerating.
func TestGeneratedFilesUpToDate(t *testing.T) {
	g := newTestGenerator()

	for path, emit := range map[string]func() []byte{
		filepath.Join("..", "..", "..", "nat", "nat_gen.go"): g.natFile,
		filepath.Join("..", "..", "..", "at_gen.go"):         g.atFile,
		filepath.Join("..", "..", "..", "of_gen.go"):         g.ofFile,
	} {
		checkedIn, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(emit()), string(checkedIn), "stale generated file: %s", path)
	}
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nat"), 0o700))

	g := &Generator{MaxLen: 4, MaxOf: 2, Root: dir, Logger: discardLogger()}
	require.NoError(t, g.Generate())

	for _, name := range []string{filepath.Join("nat", "nat_gen.go"), "at_gen.go", "of_gen.go"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
