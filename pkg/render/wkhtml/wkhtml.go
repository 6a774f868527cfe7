// Package wkhtml rasterizes markup by shelling out to wkhtmltoimage.
package wkhtml

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"github.com/goliatone/go-formsynth/pkg/render"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "wkhtmltoimage"

// Option configures the backend.
type Option func(*Backend)

// WithBinary overrides the executable path.
func WithBinary(path string) Option {
	return func(b *Backend) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			b.binary = trimmed
		}
	}
}

// WithAllow grants the renderer access to local paths referenced by the
// markup, typically the placeholder asset directory.
func WithAllow(paths ...string) Option {
	return func(b *Backend) {
		for _, path := range paths {
			if trimmed := strings.TrimSpace(path); trimmed != "" {
				b.allow = append(b.allow, trimmed)
			}
		}
	}
}

// WithQuality sets the JPEG quality (1-100). Out of range values are
// ignored and the tool default applies.
func WithQuality(quality int) Option {
	return func(b *Backend) {
		if quality >= 1 && quality <= 100 {
			b.quality = quality
		}
	}
}

// WithArgs appends raw arguments ahead of the input and output paths.
func WithArgs(args ...string) Option {
	return func(b *Backend) {
		b.extra = append(b.extra, args...)
	}
}

// Backend implements render.Backend.
type Backend struct {
	binary  string
	allow   []string
	quality int
	extra   []string
}

var _ render.Backend = (*Backend)(nil)

// New constructs the backend.
func New(options ...Option) *Backend {
	b := &Backend{binary: DefaultBinary}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

func (b *Backend) Name() string {
	return "wkhtml"
}

// Render runs wkhtmltoimage and waits for it to exit. Output on stderr is
// attached to the returned error.
func (b *Backend) Render(ctx context.Context, markupPath, outputPath string, dims render.Dimensions) error {
	if err := dims.Validate(); err != nil {
		return &render.RenderBackendError{Backend: b.Name(), Output: outputPath, Err: err}
	}
	if markupPath == "" || outputPath == "" {
		return &render.RenderBackendError{Backend: b.Name(), Output: outputPath, Err: errors.New("markup and output paths are required")}
	}

	cmd := exec.CommandContext(ctx, b.binary, b.args(markupPath, outputPath, dims)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &render.RenderBackendError{
			Backend: b.Name(),
			Output:  outputPath,
			Detail:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return nil
}

func (b *Backend) args(markupPath, outputPath string, dims render.Dimensions) []string {
	args := []string{
		"--height", strconv.Itoa(dims.Height),
		"--width", strconv.Itoa(dims.Width),
	}
	for _, path := range b.allow {
		args = append(args, "--allow", path)
	}
	if b.quality > 0 {
		args = append(args, "--quality", strconv.Itoa(b.quality))
	}
	args = append(args, b.extra...)
	return append(args, markupPath, outputPath)
}
