package synth

import (
	"math"
	"math/rand/v2"

	"github.com/goliatone/go-formsynth/pkg/layout"
)

// Bounds is the canvas size positions are drawn from. Positions are drawn
// from [0, XMax] x [0, YMax] inclusive.
type Bounds struct {
	XMax int
	YMax int
}

// SizeRange bounds both width and height of generated elements, inclusive.
type SizeRange struct {
	Min int
	Max int
}

// Synthesizer produces random non-overlapping layouts. It owns its random
// source and is not safe for concurrent use.
type Synthesizer struct {
	rng *rand.Rand
	cfg config
}

// New returns a Synthesizer drawing from rng. A nil rng falls back to a
// randomly seeded PCG source.
func New(rng *rand.Rand, options ...Option) *Synthesizer {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synthesizer{rng: rng, cfg: cfg}
}

// NewSeeded returns a Synthesizer whose output is fully determined by seed.
func NewSeeded(seed uint64, options ...Option) *Synthesizer {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), options...)
}

// Synthesize draws a layout of non-overlapping elements.
func (s *Synthesizer) Synthesize(bounds Bounds, size SizeRange) (layout.Layout, error) {
	if bounds.XMax <= 0 || bounds.YMax <= 0 {
		return layout.Layout{}, ErrInvalidBounds
	}
	if size.Min <= 0 || size.Max < size.Min {
		return layout.Layout{}, ErrInvalidSizeRange
	}
	if s.cfg.contain && (size.Max > bounds.XMax || size.Max > bounds.YMax) {
		return layout.Layout{}, ErrInvalidSizeRange
	}
	// far edges must stay representable
	if bounds.XMax > math.MaxInt-size.Max || bounds.YMax > math.MaxInt-size.Max {
		return layout.Layout{}, ErrInvalidBounds
	}

	count := s.between(s.cfg.minElements, s.cfg.maxElements)
	placed := make([]layout.Rect, 0, count)
	elements := make([]layout.Element, 0, count)

	for i := 0; i < count; i++ {
		rect, err := s.place(i, bounds, size, placed)
		if err != nil {
			return layout.Layout{}, err
		}
		placed = append(placed, rect)
		elements = append(elements, layout.Element{
			Type:    s.cfg.types[s.rng.IntN(len(s.cfg.types))],
			Value:   PlaceholderValue,
			Name:    PlaceholderName,
			Content: PlaceholderContent,
			Coordinates: &layout.Coordinates{
				X:      rect.X,
				Y:      rect.Y,
				Width:  rect.Width,
				Height: rect.Height,
			},
		})
	}

	return layout.Layout{Elements: elements}, nil
}

func (s *Synthesizer) place(index int, bounds Bounds, size SizeRange, placed []layout.Rect) (layout.Rect, error) {
	for attempt := 1; ; attempt++ {
		rect := s.draw(bounds, size)
		if !rect.CollidesWith(placed) {
			return rect, nil
		}
		if s.cfg.maxAttempts > 0 && attempt >= s.cfg.maxAttempts {
			return layout.Rect{}, &LayoutInfeasibleError{Index: index, Attempts: attempt}
		}
	}
}

func (s *Synthesizer) draw(bounds Bounds, size SizeRange) layout.Rect {
	width := s.between(size.Min, size.Max)
	height := s.between(size.Min, size.Max)
	xmax, ymax := bounds.XMax, bounds.YMax
	if s.cfg.contain {
		xmax -= width
		ymax -= height
	}
	return layout.Rect{
		X:      s.between(0, xmax),
		Y:      s.between(0, ymax),
		Width:  width,
		Height: height,
	}
}

// between draws uniformly from [lo, hi].
func (s *Synthesizer) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}
