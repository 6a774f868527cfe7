// Package preview rasterizes the ground truth of a layout: every element is
// drawn as a translucent box colour-coded by type. The output is meant to be
// compared side by side with the image produced by a rendering backend.
package preview

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/goliatone/go-formsynth/pkg/layout"
	"github.com/goliatone/go-formsynth/pkg/render"
)

var palette = map[layout.ElementType]color.RGBA{
	layout.TypeButton:   {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	layout.TypeCheckbox: {R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	layout.TypeImage:    {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	layout.TypeFile:     {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	layout.TypePassword: {R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	layout.TypeRadio:    {R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	layout.TypeText:     {R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	layout.TypeColor:    {R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	layout.TypeDate:     {R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	layout.TypeRange:    {R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

// Color returns the colour used for elements of type t.
func Color(t layout.ElementType) color.RGBA {
	if c, ok := palette[t]; ok {
		return c
	}
	return color.RGBA{A: 0xff}
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithDimensions sets the canvas size in pixels.
func WithDimensions(dims render.Dimensions) Option {
	return func(r *Renderer) {
		if dims.Validate() == nil {
			r.dims = dims
		}
	}
}

// WithStrokeWidth sets the outline width in pixels.
func WithStrokeWidth(width float64) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.strokeWidth = width
		}
	}
}

// WithBackground sets the canvas background colour.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) {
		if c != nil {
			r.background = c
		}
	}
}

// WithLabels writes each element's identifier in its top-left corner at
// size pixels. Zero disables labels.
func WithLabels(size float64) Option {
	return func(r *Renderer) {
		if size >= 0 {
			r.labelSize = size
		}
	}
}

// Renderer draws layouts to PNG.
type Renderer struct {
	dims        render.Dimensions
	strokeWidth float64
	background  color.Color
	labelSize   float64
}

const mmPerPt = 25.4 / 72

var (
	labelFamilyOnce sync.Once
	labelFamily     *canvas.FontFamily
	labelFamilyErr  error
)

func labelFont() (*canvas.FontFamily, error) {
	labelFamilyOnce.Do(func() {
		family := canvas.NewFontFamily("formsynth-preview")
		if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			labelFamilyErr = fmt.Errorf("preview: load label font: %w", err)
			return
		}
		labelFamily = family
	})
	return labelFamily, labelFamilyErr
}

// New constructs a Renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		dims:        render.DefaultDimensions,
		strokeWidth: 2,
		background:  canvas.White,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Write draws l and encodes it as PNG into w.
func (r *Renderer) Write(w io.Writer, l layout.Layout) error {
	c, err := r.draw(l)
	if err != nil {
		return err
	}
	// one canvas unit per pixel
	if err := renderers.PNG(canvas.DPMM(1.0))(w, c); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}

// WriteFile draws l into a PNG file at path.
func (r *Renderer) WriteFile(path string, l layout.Layout) error {
	var buf bytes.Buffer
	if err := r.Write(&buf, l); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("preview: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("preview: write %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(l layout.Layout) (*canvas.Canvas, error) {
	width, height := float64(r.dims.Width), float64(r.dims.Height)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	ctx.SetFillColor(r.background)
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))

	var face *canvas.FontFace
	if r.labelSize > 0 {
		family, err := labelFont()
		if err != nil {
			return nil, err
		}
		// canvas sizes fonts in points; one unit is one pixel here
		face = family.Face(r.labelSize/mmPerPt, color.RGBA{A: 0xff}, canvas.FontRegular, canvas.FontNormal)
	}

	ctx.SetStrokeWidth(r.strokeWidth)
	for i, el := range l.Elements {
		rect, ok := el.Rect()
		if !ok {
			return nil, &layout.MissingGeometryError{Index: i, Source: l.Source}
		}
		stroke := Color(el.Type)
		fill := stroke
		fill.A = 0x55
		ctx.SetFillColor(fill)
		ctx.SetStrokeColor(stroke)
		ctx.DrawPath(float64(rect.X), float64(rect.Y), canvas.Rectangle(float64(rect.Width), float64(rect.Height)))

		if face != nil {
			baseline := float64(rect.Y) + face.Metrics().Ascent
			ctx.DrawText(float64(rect.X)+r.strokeWidth, baseline, canvas.NewTextLine(face, layout.Identifier(i), canvas.Left))
		}
	}
	return c, nil
}
