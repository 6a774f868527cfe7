// Package config loads generation settings from JSON or YAML. Missing fields
// keep their defaults; Validate reports the first invalid field.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formsynth/pkg/render"
)

// ErrInvalidConfig matches any configuration Error via errors.Is.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Error reports an invalid configuration field.
type Error struct {
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Synth configures layout synthesis.
type Synth struct {
	Elements    Range  `json:"elements" yaml:"elements"`
	Size        Range  `json:"size" yaml:"size"`
	MaxAttempts int    `json:"maxAttempts" yaml:"maxAttempts"`
	Contain     bool   `json:"contain" yaml:"contain"`
	Seed        uint64 `json:"seed" yaml:"seed"`
}

// Paths lists the directories artefacts are written to.
type Paths struct {
	JSONDir    string `json:"jsonDir" yaml:"jsonDir"`
	HTMLDir    string `json:"htmlDir" yaml:"htmlDir"`
	ImageDir   string `json:"imageDir" yaml:"imageDir"`
	AssetDir   string `json:"assetDir" yaml:"assetDir"`
	PreviewDir string `json:"previewDir" yaml:"previewDir"`
}

// Backend selects and configures the rendering backend.
type Backend struct {
	Name    string `json:"name" yaml:"name"`
	Binary  string `json:"binary" yaml:"binary"`
	Format  string `json:"format" yaml:"format"`
	Quality int    `json:"quality" yaml:"quality"`
}

// Config is the complete generator configuration.
type Config struct {
	Canvas          render.Dimensions `json:"canvas" yaml:"canvas"`
	Synth           Synth             `json:"synth" yaml:"synth"`
	Paths           Paths             `json:"paths" yaml:"paths"`
	Backend         Backend           `json:"backend" yaml:"backend"`
	Workers         int               `json:"workers" yaml:"workers"`
	ContinueOnError bool              `json:"continueOnError" yaml:"continueOnError"`
}

// Defaults returns the configuration used when no file is supplied.
func Defaults() Config {
	return Config{
		Canvas: render.DefaultDimensions,
		Synth: Synth{
			Elements:    Range{Min: 1, Max: 10},
			Size:        Range{Min: 10, Max: 400},
			MaxAttempts: 10000,
		},
		Paths: Paths{
			JSONDir:    "./jsons",
			HTMLDir:    "./htmls",
			ImageDir:   "./images",
			AssetDir:   "./src",
			PreviewDir: "./previews",
		},
		Backend: Backend{
			Name:   "wkhtml",
			Binary: "wkhtmltoimage",
			Format: "jpg",
		},
		Workers: 1,
	}
}

// Load reads path and overlays it on Defaults. JSON is tried first, then
// YAML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse overlays data on Defaults and validates the result.
func Parse(source string, data []byte) (Config, error) {
	cfg := Defaults()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Defaults()
		if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
			return Config{}, &Error{Message: fmt.Sprintf("parse %s: invalid JSON or YAML", source), Err: yamlErr}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0:
		return &Error{Field: "canvas.width", Message: "must be positive"}
	case c.Canvas.Height <= 0:
		return &Error{Field: "canvas.height", Message: "must be positive"}
	case c.Synth.Elements.Min < 1:
		return &Error{Field: "synth.elements.min", Message: "must be at least 1"}
	case c.Synth.Elements.Max < c.Synth.Elements.Min:
		return &Error{Field: "synth.elements.max", Message: "must not be below min"}
	case c.Synth.Size.Min < 1:
		return &Error{Field: "synth.size.min", Message: "must be at least 1"}
	case c.Synth.Size.Max < c.Synth.Size.Min:
		return &Error{Field: "synth.size.max", Message: "must not be below min"}
	case c.Synth.MaxAttempts < 0:
		return &Error{Field: "synth.maxAttempts", Message: "must not be negative"}
	case c.Workers < 1:
		return &Error{Field: "workers", Message: "must be at least 1"}
	case strings.TrimSpace(c.Backend.Name) == "":
		return &Error{Field: "backend.name", Message: "required field is missing"}
	}
	switch strings.ToLower(c.Backend.Format) {
	case "jpg", "jpeg", "png", "bmp", "svg":
	default:
		return &Error{Field: "backend.format", Message: fmt.Sprintf("unsupported image format %q", c.Backend.Format)}
	}
	return nil
}
