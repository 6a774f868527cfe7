// Package assets embeds the placeholder image referenced by image controls.
// The placeholder is a 1x1 unit cross that the compiled markup scales to the
// element's size.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PlaceholderName is the file name of the embedded placeholder image.
const PlaceholderName = "cross.svg"

//go:embed files/*
var embedded embed.FS

// FS exposes the embedded asset bundle.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		return embedded
	}
	return sub
}

// Placeholder returns the placeholder image bytes.
func Placeholder() []byte {
	data, err := fs.ReadFile(FS(), PlaceholderName)
	if err != nil {
		return nil
	}
	return data
}

// Install writes the placeholder into dir, creating it when needed, and
// returns the written path. An existing file is left untouched so callers
// can drop in their own placeholder.
func Install(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("assets: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, PlaceholderName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, Placeholder(), 0o644); err != nil {
		return "", fmt.Errorf("assets: write %s: %w", path, err)
	}
	return path, nil
}
