package wkhtml

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formsynth/pkg/render"
)

func TestBackend_Args(t *testing.T) {
	b := New(
		WithAllow("./assets", " "),
		WithQuality(90),
		WithArgs("--quiet"),
	)

	got := b.args("htmls/0.html", "images/0.jpg", render.Dimensions{Width: 1920, Height: 1080})
	want := []string{
		"--height", "1080",
		"--width", "1920",
		"--allow", "./assets",
		"--quality", "90",
		"--quiet",
		"htmls/0.html", "images/0.jpg",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestBackend_IgnoresInvalidQuality(t *testing.T) {
	b := New(WithQuality(0), WithQuality(101))
	if b.quality != 0 {
		t.Fatalf("expected quality to stay unset, got %d", b.quality)
	}
}

func TestBackend_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	b := New(WithBinary(filepath.Join(dir, "no-such-wkhtmltoimage")))

	err := b.Render(context.Background(), filepath.Join(dir, "in.html"), filepath.Join(dir, "out.jpg"), render.DefaultDimensions)
	if !errors.Is(err, render.ErrRenderBackend) {
		t.Fatalf("expected ErrRenderBackend, got %v", err)
	}
	var backendErr *render.RenderBackendError
	if !errors.As(err, &backendErr) || backendErr.Backend != "wkhtml" {
		t.Fatalf("expected wkhtml RenderBackendError, got %#v", err)
	}
}

func TestBackend_RejectsInvalidDimensions(t *testing.T) {
	err := New().Render(context.Background(), "in.html", "out.jpg", render.Dimensions{})
	if !errors.Is(err, render.ErrRenderBackend) {
		t.Fatalf("expected ErrRenderBackend, got %v", err)
	}
}
