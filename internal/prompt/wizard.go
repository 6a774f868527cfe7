package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode names a CLI workflow.
type Mode string

const (
	ModeSingle   Mode = "single"
	ModeMultiple Mode = "multiple"
	ModeGenerate Mode = "generate"
	ModePreview  Mode = "preview"
)

// Modes lists the workflows in menu order.
func Modes() []Mode {
	return []Mode{ModeSingle, ModeMultiple, ModeGenerate, ModePreview}
}

// Request is what the wizard collected.
type Request struct {
	Mode   Mode
	Paths  []string
	Dest   string
	Amount int
	Render bool
}

// Wizard asks for a workflow and its arguments.
type Wizard struct {
	driver Driver
	stat   func(string) error
}

// NewWizard returns a wizard over driver. A nil driver uses survey.
func NewWizard(driver Driver) *Wizard {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Wizard{
		driver: driver,
		stat: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
	}
}

// Run prompts until a complete request is collected.
func (w *Wizard) Run(ctx context.Context) (Request, error) {
	modes := Modes()
	options := make([]string, len(modes))
	for i, m := range modes {
		options[i] = string(m)
	}

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message: "What do you want to do?",
		Options: options,
		Help:    "single/multiple render layout files, generate writes random layouts, preview draws ground truth boxes",
	})
	if err != nil {
		return Request{}, err
	}
	if idx < 0 || idx >= len(modes) {
		return Request{}, fmt.Errorf("prompt: unknown selection %d", idx)
	}

	req := Request{Mode: modes[idx]}
	switch req.Mode {
	case ModeSingle:
		path, err := w.askPath(ctx, "Layout file")
		if err != nil {
			return Request{}, err
		}
		dest, err := w.driver.Input(ctx, InputConfig{Message: "Image name", Default: "image"})
		if err != nil {
			return Request{}, err
		}
		req.Paths = []string{path}
		req.Dest = strings.TrimSpace(dest)
	case ModeMultiple:
		raw, err := w.driver.Input(ctx, InputConfig{
			Message:   "Layout files (space separated)",
			Validator: w.validatePaths,
		})
		if err != nil {
			return Request{}, err
		}
		req.Paths = strings.Fields(raw)
	case ModeGenerate:
		raw, err := w.driver.Input(ctx, InputConfig{
			Message:   "How many layouts?",
			Default:   "10",
			Validator: validateAmount,
		})
		if err != nil {
			return Request{}, err
		}
		req.Amount, _ = strconv.Atoi(strings.TrimSpace(raw))
		req.Render, err = w.driver.Confirm(ctx, ConfirmConfig{Message: "Render images as well?"})
		if err != nil {
			return Request{}, err
		}
	case ModePreview:
		path, err := w.askPath(ctx, "Layout file")
		if err != nil {
			return Request{}, err
		}
		dest, err := w.driver.Input(ctx, InputConfig{Message: "Output PNG", Default: "preview.png"})
		if err != nil {
			return Request{}, err
		}
		req.Paths = []string{path}
		req.Dest = strings.TrimSpace(dest)
	}
	return req, nil
}

func (w *Wizard) askPath(ctx context.Context, message string) (string, error) {
	path, err := w.driver.Input(ctx, InputConfig{Message: message, Validator: w.validatePath})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

func (w *Wizard) validatePath(raw string) error {
	path := strings.TrimSpace(raw)
	if path == "" {
		return errors.New("a path is required")
	}
	if err := w.stat(path); err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	return nil
}

func (w *Wizard) validatePaths(raw string) error {
	paths := strings.Fields(raw)
	if len(paths) == 0 {
		return errors.New("at least one path is required")
	}
	for _, path := range paths {
		if err := w.validatePath(path); err != nil {
			return err
		}
	}
	return nil
}

func validateAmount(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return errors.New("enter a positive whole number")
	}
	return nil
}
