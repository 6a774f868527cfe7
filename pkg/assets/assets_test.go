package assets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formsynth/pkg/assets"
)

func TestPlaceholderEmbedded(t *testing.T) {
	data := assets.Placeholder()
	if !strings.Contains(string(data), "<svg") {
		t.Fatalf("expected embedded svg placeholder, got %q", data)
	}
}

func TestInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src")

	path, err := assets.Install(dir)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if path != filepath.Join(dir, assets.PlaceholderName) {
		t.Fatalf("unexpected path %s", path)
	}
	if err := os.WriteFile(path, []byte("custom"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	if _, err := assets.Install(dir); err != nil {
		t.Fatalf("reinstall: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "custom" {
		t.Fatalf("expected custom placeholder to be preserved, got %q", data)
	}
}
