package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_ResolvesLayout(t *testing.T) {
	root := t.TempDir()

	ws, err := New(root, "templates", "thumbnails", "index.html", "stats.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ws.TemplatesPath != filepath.Join(root, "templates") {
		t.Errorf("templates path = %q", ws.TemplatesPath)
	}
	if ws.ThumbnailsPath != filepath.Join(root, "thumbnails") {
		t.Errorf("thumbnails path = %q", ws.ThumbnailsPath)
	}
	if ws.OutputPath != filepath.Join(root, "index.html") {
		t.Errorf("output path = %q", ws.OutputPath)
	}
	if ws.ConfigPath != filepath.Join(root, ConfigFilename) {
		t.Errorf("config path = %q", ws.ConfigPath)
	}
}

func TestExistsAndInitialize(t *testing.T) {
	root := t.TempDir()
	ws, err := New(root, "templates", "thumbnails", "index.html", "stats.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ws.Exists() {
		t.Fatal("workspace should not exist before Initialize")
	}

	if err := ws.Initialize(); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	if !ws.Exists() {
		t.Fatal("workspace should exist after Initialize")
	}
	if _, err := os.Stat(ws.ThumbnailsPath); err != nil {
		t.Errorf("thumbnails directory missing: %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	if got := ConfigFile("/some/root"); got != filepath.Join("/some/root", ConfigFilename) {
		t.Errorf("ConfigFile = %q", got)
	}
}
