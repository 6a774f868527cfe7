package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/goliatone/go-formsynth/internal/prompt"
	"github.com/goliatone/go-formsynth/pkg/config"
	"github.com/goliatone/go-formsynth/pkg/layout"
	"github.com/goliatone/go-formsynth/pkg/pipeline"
	"github.com/goliatone/go-formsynth/pkg/preview"
	"github.com/goliatone/go-formsynth/pkg/render"
	"github.com/goliatone/go-formsynth/pkg/render/wkhtml"
)

const usage = `usage: formsynth [flags] <command> [args]

commands:
  single <layout.json> [dest]   render one layout to images/<dest>
  multiple <layout.json>...     render layouts to images/0, images/1, ...
  generate [-n N] [-render]     write N random layouts to the JSON dir
  preview <layout.json> <out>   draw ground truth boxes to a PNG

flags:
`

const previewLabelSize = 16

func main() {
	configPath := flag.String("config", "", "JSON or YAML configuration file")
	backendName := flag.String("backend", "", "rendering backend (default from config)")
	workers := flag.Int("workers", 0, "concurrent renders (default from config)")
	seed := flag.Uint64("seed", 0, "random seed for generate (0 picks one)")
	continueOnError := flag.Bool("continue", false, "keep going when a layout fails")
	withPreview := flag.Bool("preview", false, "also write ground truth previews when rendering")
	interactive := flag.Bool("interactive", false, "choose the command with a terminal wizard")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *backendName != "" {
		cfg.Backend.Name = *backendName
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *seed != 0 {
		cfg.Synth.Seed = *seed
	}
	if *continueOnError {
		cfg.ContinueOnError = true
	}

	req, err := request(ctx, *interactive, flag.Args())
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		flag.Usage()
		log.Fatalf("%v", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(ctx, cfg, req, logger, *withPreview); err != nil {
		log.Fatalf("%s failed: %v", req.Mode, err)
	}
}

func request(ctx context.Context, interactive bool, args []string) (prompt.Request, error) {
	if interactive {
		return prompt.NewWizard(nil).Run(ctx)
	}
	if len(args) == 0 {
		return prompt.Request{}, errors.New("missing command")
	}

	req := prompt.Request{Mode: prompt.Mode(args[0])}
	rest := args[1:]
	switch req.Mode {
	case prompt.ModeSingle:
		if len(rest) < 1 || len(rest) > 2 {
			return prompt.Request{}, errors.New("single expects <layout.json> [dest]")
		}
		req.Paths = rest[:1]
		if len(rest) == 2 {
			req.Dest = rest[1]
		}
	case prompt.ModeMultiple:
		if len(rest) == 0 {
			return prompt.Request{}, errors.New("multiple expects at least one layout file")
		}
		req.Paths = rest
	case prompt.ModeGenerate:
		fs := flag.NewFlagSet("generate", flag.ContinueOnError)
		amount := fs.Int("n", 10, "number of layouts")
		renderImages := fs.Bool("render", false, "render every generated layout")
		if err := fs.Parse(rest); err != nil {
			return prompt.Request{}, err
		}
		if fs.NArg() == 1 {
			n, err := strconv.Atoi(fs.Arg(0))
			if err != nil {
				return prompt.Request{}, fmt.Errorf("invalid amount %q", fs.Arg(0))
			}
			*amount = n
		}
		req.Amount = *amount
		req.Render = *renderImages
	case prompt.ModePreview:
		if len(rest) != 2 {
			return prompt.Request{}, errors.New("preview expects <layout.json> <out.png>")
		}
		req.Paths = rest[:1]
		req.Dest = rest[1]
	default:
		return prompt.Request{}, fmt.Errorf("unknown command %q", args[0])
	}
	return req, nil
}

func run(ctx context.Context, cfg config.Config, req prompt.Request, logger *slog.Logger, withPreview bool) error {
	if req.Mode == prompt.ModePreview {
		l, err := layout.DecodeFile(req.Paths[0])
		if err != nil {
			return err
		}
		if err := preview.New(preview.WithDimensions(cfg.Canvas), preview.WithLabels(previewLabelSize)).WriteFile(req.Dest, l); err != nil {
			return err
		}
		fmt.Printf("Preview written to %s\n", req.Dest)
		return nil
	}

	options := []pipeline.Option{
		pipeline.WithConfig(cfg),
		pipeline.WithLogger(logger),
	}
	if req.Mode != prompt.ModeGenerate || req.Render {
		backend, err := backends(cfg).Get(cfg.Backend.Name)
		if err != nil {
			return err
		}
		options = append(options, pipeline.WithBackend(backend))
	}
	if withPreview {
		options = append(options, pipeline.WithPreview(preview.New(preview.WithDimensions(cfg.Canvas), preview.WithLabels(previewLabelSize))))
	}

	p, err := pipeline.New(options...)
	if err != nil {
		return err
	}

	switch req.Mode {
	case prompt.ModeSingle:
		res, err := p.Single(ctx, req.Paths[0], req.Dest)
		if err != nil {
			return err
		}
		fmt.Printf("Image written to %s\n", res.ImagePath)
	case prompt.ModeMultiple:
		results, err := p.Multiple(ctx, req.Paths...)
		fmt.Printf("%d of %d images written to %s\n", len(results), len(req.Paths), cfg.Paths.ImageDir)
		return err
	case prompt.ModeGenerate:
		if req.Render {
			results, err := p.GenerateDataset(ctx, req.Amount)
			fmt.Printf("%d of %d images written to %s\n", len(results), req.Amount, cfg.Paths.ImageDir)
			return err
		}
		paths, err := p.GenerateFixtures(ctx, req.Amount)
		fmt.Printf("%d layouts written to %s\n", len(paths), cfg.Paths.JSONDir)
		return err
	}
	return nil
}

func backends(cfg config.Config) *render.Registry {
	registry := render.NewRegistry()
	wkOptions := []wkhtml.Option{wkhtml.WithAllow(cfg.Paths.AssetDir)}
	if cfg.Backend.Binary != "" {
		wkOptions = append(wkOptions, wkhtml.WithBinary(cfg.Backend.Binary))
	}
	if cfg.Backend.Quality > 0 {
		wkOptions = append(wkOptions, wkhtml.WithQuality(cfg.Backend.Quality))
	}
	registry.MustRegister(wkhtml.New(wkOptions...))
	return registry
}
