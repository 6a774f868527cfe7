package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-formsynth/pkg/assets"
	"github.com/goliatone/go-formsynth/pkg/config"
	"github.com/goliatone/go-formsynth/pkg/layout"
	"github.com/goliatone/go-formsynth/pkg/markup"
	"github.com/goliatone/go-formsynth/pkg/preview"
	"github.com/goliatone/go-formsynth/pkg/render"
	"github.com/goliatone/go-formsynth/pkg/synth"
)

// DefaultImageName is used by Single when no destination is given.
const DefaultImageName = "image"

// ErrNoBackend is returned by render operations when no backend is set.
var ErrNoBackend = errors.New("pipeline: no rendering backend configured")

// Result lists the artefacts written for one layout.
type Result struct {
	Name        string
	LayoutPath  string
	MarkupPath  string
	ImagePath   string
	PreviewPath string
}

// Pipeline runs dataset workflows. It is safe to call render operations
// concurrently; fixture generation serialises on the synthesizer.
type Pipeline struct {
	cfg      config.Config
	compiler *markup.Compiler
	backend  render.Backend
	preview  *preview.Renderer
	logger   *slog.Logger

	synthMu sync.Mutex
	synth   *synth.Synthesizer

	prepareOnce sync.Once
	prepareErr  error
}

// New constructs a pipeline. Without WithCompiler, a compiler is built that
// points image controls at the placeholder installed in the asset dir.
func New(options ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg:    config.Defaults(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	if p.compiler == nil {
		src, err := placeholderSrc(p.cfg.Paths.AssetDir)
		if err != nil {
			return nil, err
		}
		compiler, err := markup.New(markup.WithPlaceholderSrc(src))
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		p.compiler = compiler
	}

	if p.synth == nil {
		p.synth = newSynthesizer(p.cfg.Synth)
	}
	return p, nil
}

// Config returns the effective configuration.
func (p *Pipeline) Config() config.Config {
	return p.cfg
}

// Single renders the layout document at path. The image is named after dest
// with its extension removed, or DefaultImageName when dest is empty.
func (p *Pipeline) Single(ctx context.Context, path, dest string) (Result, error) {
	l, err := layout.DecodeFile(path)
	if err != nil {
		return Result{}, err
	}
	name := DefaultImageName
	if trimmed := trimExt(dest); trimmed != "" {
		name = trimmed
	}
	res, err := p.Render(ctx, name, l)
	if err != nil {
		return Result{}, err
	}
	res.LayoutPath = path
	return res, nil
}

// Multiple decodes every path up front, failing on the first invalid
// document, then renders layout i under the name "i".
func (p *Pipeline) Multiple(ctx context.Context, paths ...string) ([]Result, error) {
	layouts, err := layout.DecodeFiles(paths...)
	if err != nil {
		return nil, err
	}
	jobs := make([]job, len(layouts))
	for i, l := range layouts {
		jobs[i] = job{name: strconv.Itoa(i), layout: l, layoutPath: paths[i]}
	}
	return p.renderAll(ctx, jobs)
}

// Render compiles l, writes the markup to the HTML dir and rasterizes it
// into the image dir.
func (p *Pipeline) Render(ctx context.Context, name string, l layout.Layout) (Result, error) {
	if p.backend == nil {
		return Result{}, ErrNoBackend
	}
	if err := p.prepare(); err != nil {
		return Result{}, err
	}

	doc, err := p.compiler.Compile(ctx, l)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Name:       name,
		MarkupPath: filepath.Join(p.cfg.Paths.HTMLDir, name+".html"),
		ImagePath:  filepath.Join(p.cfg.Paths.ImageDir, name+"."+p.imageExt()),
	}
	if err := os.WriteFile(res.MarkupPath, doc, 0o644); err != nil {
		return Result{}, fmt.Errorf("pipeline: write markup %s: %w", res.MarkupPath, err)
	}

	p.logger.Debug("rendering layout", "name", name, "elements", l.Len(), "backend", p.backend.Name())
	if err := p.backend.Render(ctx, res.MarkupPath, res.ImagePath, p.cfg.Canvas); err != nil {
		return Result{}, err
	}

	if p.preview != nil {
		res.PreviewPath = filepath.Join(p.cfg.Paths.PreviewDir, name+".png")
		if err := p.preview.WriteFile(res.PreviewPath, l); err != nil {
			return Result{}, err
		}
	}
	p.logger.Info("rendered layout", "name", name, "image", res.ImagePath)
	return res, nil
}

// GenerateFixtures synthesizes amount layouts and writes them to the JSON dir
// as 1.json..amount.json, zero padded to the width of amount.
func (p *Pipeline) GenerateFixtures(ctx context.Context, amount int) ([]string, error) {
	if amount < 1 {
		return nil, fmt.Errorf("pipeline: fixture amount must be positive, got %d", amount)
	}
	if err := os.MkdirAll(p.cfg.Paths.JSONDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: mkdir %s: %w", p.cfg.Paths.JSONDir, err)
	}

	paths := make([]string, 0, amount)
	for i := 1; i <= amount; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		l, err := p.synthesize()
		if err != nil {
			return paths, err
		}
		data, err := layout.Encode(l)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(p.cfg.Paths.JSONDir, FixtureName(i, amount))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("pipeline: write fixture %s: %w", path, err)
		}
		paths = append(paths, path)
		p.logger.Info(fmt.Sprintf("generated %d/%d files", i, amount), "path", path)
	}
	return paths, nil
}

// GenerateDataset writes amount fixtures and renders each one, naming images
// after their fixture.
func (p *Pipeline) GenerateDataset(ctx context.Context, amount int) ([]Result, error) {
	if p.backend == nil {
		return nil, ErrNoBackend
	}
	paths, err := p.GenerateFixtures(ctx, amount)
	if err != nil {
		return nil, err
	}
	jobs := make([]job, 0, len(paths))
	for _, path := range paths {
		l, err := layout.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{name: trimExt(filepath.Base(path)), layout: l, layoutPath: path})
	}
	return p.renderAll(ctx, jobs)
}

// FixtureName returns the zero-padded file name of fixture i out of amount.
func FixtureName(i, amount int) string {
	width := len(strconv.Itoa(amount))
	return fmt.Sprintf("%0*d.json", width, i)
}

func (p *Pipeline) synthesize() (layout.Layout, error) {
	p.synthMu.Lock()
	defer p.synthMu.Unlock()

	s := p.cfg.Synth
	return p.synth.Synthesize(
		synth.Bounds{XMax: p.cfg.Canvas.Width, YMax: p.cfg.Canvas.Height},
		synth.SizeRange{Min: s.Size.Min, Max: s.Size.Max},
	)
}

func (p *Pipeline) prepare() error {
	p.prepareOnce.Do(func() {
		dirs := []string{p.cfg.Paths.HTMLDir, p.cfg.Paths.ImageDir}
		if p.preview != nil {
			dirs = append(dirs, p.cfg.Paths.PreviewDir)
		}
		for _, dir := range dirs {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				p.prepareErr = fmt.Errorf("pipeline: mkdir %s: %w", dir, err)
				return
			}
		}
		if _, err := assets.Install(p.cfg.Paths.AssetDir); err != nil {
			p.prepareErr = fmt.Errorf("pipeline: %w", err)
		}
	})
	return p.prepareErr
}

func (p *Pipeline) imageExt() string {
	ext := strings.ToLower(strings.TrimPrefix(p.cfg.Backend.Format, "."))
	if ext == "" {
		return "jpg"
	}
	return ext
}

func newSynthesizer(cfg config.Synth) *synth.Synthesizer {
	options := []synth.Option{
		synth.WithElementRange(cfg.Elements.Min, cfg.Elements.Max),
		synth.WithMaxAttempts(cfg.MaxAttempts),
		synth.WithContainment(cfg.Contain),
	}
	if cfg.Seed != 0 {
		return synth.NewSeeded(cfg.Seed, options...)
	}
	return synth.New(nil, options...)
}

func placeholderSrc(assetDir string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(assetDir, assets.PlaceholderName))
	if err != nil {
		return "", fmt.Errorf("pipeline: resolve placeholder: %w", err)
	}
	return filepath.ToSlash(abs), nil
}

func trimExt(name string) string {
	name = strings.TrimSpace(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
