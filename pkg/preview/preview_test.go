package preview_test

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formsynth/pkg/layout"
	"github.com/goliatone/go-formsynth/pkg/preview"
	"github.com/goliatone/go-formsynth/pkg/render"
	"github.com/goliatone/go-formsynth/pkg/testsupport"
)

func TestRenderer_Write(t *testing.T) {
	dims := render.Dimensions{Width: 400, Height: 400}
	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.TypeButton, 100, 100, 200, 200),
	}}

	var buf bytes.Buffer
	if err := preview.New(preview.WithDimensions(dims)).Write(&buf, l); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if abs(bounds.Dx()-dims.Width) > 1 || abs(bounds.Dy()-dims.Height) > 1 {
		t.Fatalf("unexpected image size %v", bounds)
	}

	// The element is centred, so its midpoint is covered regardless of the
	// vertical axis direction.
	r, g, b, _ := img.At(200, 200).RGBA()
	if r == 0xffff && g == 0xffff && b == 0xffff {
		t.Fatalf("expected element fill at canvas centre")
	}
	r, g, b, _ = img.At(10, 10).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Fatalf("expected white background at corner, got %x %x %x", r, g, b)
	}
}

func TestRenderer_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "previews", "0.png")
	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.TypeRadio, 0, 0, 10, 10),
	}}

	if err := preview.New(preview.WithDimensions(render.Dimensions{Width: 64, Height: 64})).WriteFile(path, l); err != nil {
		t.Fatalf("write file: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty png")
	}
}

func TestRenderer_MissingGeometry(t *testing.T) {
	l := layout.Layout{Elements: []layout.Element{{Type: layout.TypeText}}}

	err := preview.New().Write(&bytes.Buffer{}, l)
	if !errors.Is(err, layout.ErrMissingGeometry) {
		t.Fatalf("expected ErrMissingGeometry, got %v", err)
	}
}

func TestColor_DistinctPerType(t *testing.T) {
	seen := map[string]layout.ElementType{}
	for _, typ := range layout.Types() {
		c := preview.Color(typ)
		key := string([]byte{c.R, c.G, c.B})
		if prev, ok := seen[key]; ok {
			t.Fatalf("types %q and %q share a colour", prev, typ)
		}
		seen[key] = typ
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestRenderer_Labels(t *testing.T) {
	dims := render.Dimensions{Width: 200, Height: 200}
	l := layout.Layout{Elements: []layout.Element{
		testsupport.Box(layout.TypeText, 20, 20, 160, 160),
	}}

	var plain, labeled bytes.Buffer
	if err := preview.New(preview.WithDimensions(dims)).Write(&plain, l); err != nil {
		t.Fatalf("write plain: %v", err)
	}
	if err := preview.New(preview.WithDimensions(dims), preview.WithLabels(40)).Write(&labeled, l); err != nil {
		t.Fatalf("write labeled: %v", err)
	}
	if bytes.Equal(plain.Bytes(), labeled.Bytes()) {
		t.Fatal("expected the identifier label to change the output")
	}
}
