package markup

import (
	"io/fs"
	"strings"

	rendertemplate "github.com/goliatone/go-formsynth/pkg/render/template"
)

const (
	// DefaultPlaceholderSrc is the image source used by image controls.
	DefaultPlaceholderSrc = "./src/cross.svg"
	// DefaultLabelStyle is applied to radio/checkbox labels.
	DefaultLabelStyle = "font-family:sans-serif"
)

// Option configures the compiler.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	placeholderSrc   string
	labelStyle       string
	rawLabels        bool
}

// WithTemplatesFS supplies an alternate template bundle. The bundle must
// contain templates/document.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the template bundle from a directory on disk
// instead of the embedded or supplied fs.FS.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPlaceholderSrc sets the image source referenced by image controls.
func WithPlaceholderSrc(src string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			cfg.placeholderSrc = trimmed
		}
	}
}

// WithLabelStyle overrides the inline style of radio/checkbox labels. The
// style is published to templates as the global label_style.
func WithLabelStyle(style string) Option {
	return func(cfg *config) {
		cfg.labelStyle = strings.TrimSpace(style)
	}
}

// WithRawLabels keeps label text as given instead of stripping markup from
// it. The text is still escaped.
func WithRawLabels() Option {
	return func(cfg *config) {
		cfg.rawLabels = true
	}
}
