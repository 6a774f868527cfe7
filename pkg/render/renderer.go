package render

import (
	"context"
	"fmt"
)

// DefaultDimensions is the canvas size images are rasterized at.
var DefaultDimensions = Dimensions{Width: 1920, Height: 1080}

// Dimensions is an image size in pixels.
type Dimensions struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Validate reports non-positive dimensions.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("render: dimensions must be positive, got %dx%d", d.Width, d.Height)
	}
	return nil
}

// Backend rasterizes a markup file into an image. Implementations wrap
// failures in RenderBackendError.
type Backend interface {
	Name() string
	Render(ctx context.Context, markupPath, outputPath string, dims Dimensions) error
}

// BackendFunc adapts a function into a Backend named name.
func BackendFunc(name string, fn func(ctx context.Context, markupPath, outputPath string, dims Dimensions) error) Backend {
	return funcBackend{name: name, fn: fn}
}

type funcBackend struct {
	name string
	fn   func(ctx context.Context, markupPath, outputPath string, dims Dimensions) error
}

func (b funcBackend) Name() string {
	return b.name
}

func (b funcBackend) Render(ctx context.Context, markupPath, outputPath string, dims Dimensions) error {
	if b.fn == nil {
		return &RenderBackendError{Backend: b.name, Output: outputPath, Err: fmt.Errorf("render function is nil")}
	}
	return b.fn(ctx, markupPath, outputPath, dims)
}
