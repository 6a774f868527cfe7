package synth

import "github.com/goliatone/go-formsynth/pkg/layout"

// DefaultMaxAttempts caps placement draws per element.
const DefaultMaxAttempts = 10000

// Placeholder strings assigned to synthesized elements.
const (
	PlaceholderValue   = "value"
	PlaceholderName    = "name"
	PlaceholderContent = "content"
)

// Option configures a Synthesizer.
type Option func(*config)

type config struct {
	minElements int
	maxElements int
	maxAttempts int
	contain     bool
	types       []layout.ElementType
}

func defaultConfig() config {
	return config{
		minElements: 1,
		maxElements: 10,
		maxAttempts: DefaultMaxAttempts,
		types:       layout.Types(),
	}
}

// WithElementRange sets the inclusive range the element count is drawn from.
// Invalid ranges are ignored.
func WithElementRange(lo, hi int) Option {
	return func(cfg *config) {
		if lo < 1 || hi < lo {
			return
		}
		cfg.minElements = lo
		cfg.maxElements = hi
	}
}

// WithMaxAttempts caps the number of placement draws per element. Zero
// disables the cap, in which case synthesis may not terminate on a crowded
// canvas.
func WithMaxAttempts(n int) Option {
	return func(cfg *config) {
		if n < 0 {
			return
		}
		cfg.maxAttempts = n
	}
}

// WithContainment keeps every element fully inside the canvas bounds.
func WithContainment(enabled bool) Option {
	return func(cfg *config) {
		cfg.contain = enabled
	}
}

// WithTypes restricts the pool element types are drawn from. Unknown types
// are dropped; an empty result keeps the default pool.
func WithTypes(types ...layout.ElementType) Option {
	return func(cfg *config) {
		pool := make([]layout.ElementType, 0, len(types))
		for _, t := range types {
			if t.Valid() {
				pool = append(pool, t)
			}
		}
		if len(pool) > 0 {
			cfg.types = pool
		}
	}
}
