package pipeline

import (
	"log/slog"

	"github.com/goliatone/go-formsynth/pkg/config"
	"github.com/goliatone/go-formsynth/pkg/markup"
	"github.com/goliatone/go-formsynth/pkg/preview"
	"github.com/goliatone/go-formsynth/pkg/render"
	"github.com/goliatone/go-formsynth/pkg/synth"
)

// Option configures the pipeline.
type Option func(*Pipeline)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.Config) Option {
	return func(p *Pipeline) {
		p.cfg = cfg
	}
}

// WithBackend sets the rendering backend. Render operations fail without one.
func WithBackend(backend render.Backend) Option {
	return func(p *Pipeline) {
		if backend != nil {
			p.backend = backend
		}
	}
}

// WithCompiler injects a preconfigured markup compiler.
func WithCompiler(compiler *markup.Compiler) Option {
	return func(p *Pipeline) {
		if compiler != nil {
			p.compiler = compiler
		}
	}
}

// WithSynthesizer injects the synthesizer used for fixture generation.
func WithSynthesizer(s *synth.Synthesizer) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.synth = s
		}
	}
}

// WithPreview writes a ground-truth preview PNG next to every rendered image.
func WithPreview(renderer *preview.Renderer) Option {
	return func(p *Pipeline) {
		p.preview = renderer
	}
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithWorkers sets how many layouts are rendered concurrently.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.cfg.Workers = n
		}
	}
}

// WithContinueOnError keeps multi-layout runs going past failed layouts.
func WithContinueOnError(enabled bool) Option {
	return func(p *Pipeline) {
		p.cfg.ContinueOnError = enabled
	}
}
