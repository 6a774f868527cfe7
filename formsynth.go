// Package formsynth generates synthetic, labeled screenshots of web form
// controls for training element detectors. A layout of non-overlapping
// controls is either read from JSON or synthesized at random, compiled to an
// absolutely positioned HTML page and rasterized by a rendering backend.
package formsynth

import (
	"context"

	"github.com/goliatone/go-formsynth/pkg/layout"
	"github.com/goliatone/go-formsynth/pkg/markup"
	"github.com/goliatone/go-formsynth/pkg/pipeline"
	"github.com/goliatone/go-formsynth/pkg/synth"
)

// Layout aliases layout.Layout for callers that only import the root package.
type Layout = layout.Layout

// Element aliases layout.Element.
type Element = layout.Element

// Bounds aliases synth.Bounds.
type Bounds = synth.Bounds

// SizeRange aliases synth.SizeRange.
type SizeRange = synth.SizeRange

// NewPipeline exposes the pipeline constructor from the top-level module.
func NewPipeline(options ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.New(options...)
}

// Synthesize draws a random layout using a generator seeded with seed. A zero
// seed draws from a randomly seeded generator.
func Synthesize(seed uint64, bounds Bounds, size SizeRange, options ...synth.Option) (Layout, error) {
	var s *synth.Synthesizer
	if seed == 0 {
		s = synth.New(nil, options...)
	} else {
		s = synth.NewSeeded(seed, options...)
	}
	return s.Synthesize(bounds, size)
}

// Compile decodes a layout document and compiles it to HTML with the default
// compiler. It is the simplest entry point for callers that just want markup.
func Compile(ctx context.Context, source string, data []byte, options ...markup.Option) ([]byte, error) {
	l, err := layout.Decode(source, data)
	if err != nil {
		return nil, err
	}
	compiler, err := markup.New(options...)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(ctx, l)
}
