// Package testsupport holds fixture and golden-file helpers shared by tests.
// Goldens are rewritten instead of compared when UPDATE_GOLDENS is set.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formsynth/pkg/layout"
)

// MustLoadLayout decodes a layout fixture, failing the test on error.
func MustLoadLayout(t *testing.T, path string) layout.Layout {
	t.Helper()

	l, err := layout.DecodeFile(path)
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	return l
}

// Box is a shorthand for a layout element with coordinates.
func Box(elType layout.ElementType, x, y, width, height int) layout.Element {
	return layout.Element{
		Type:        elType,
		Coordinates: &layout.Coordinates{X: x, Y: y, Width: width, Height: height},
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
