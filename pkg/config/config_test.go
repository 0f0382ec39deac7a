package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "showcase.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TemplatesDir != "templates" {
		t.Errorf("templates_dir = %q, want templates", cfg.TemplatesDir)
	}
	if cfg.OutputFile != "index.html" {
		t.Errorf("output_file = %q, want index.html", cfg.OutputFile)
	}
	if len(cfg.Fixes) == 0 {
		t.Error("expected default fix rules")
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	content := `
templates_dir: pages
site_title: My Gallery
watch_debounce_ms: 250
fixes:
  - pattern: "old/"
    replacement: "new/"
  - pattern: ".JPG"
    replacement: ".jpg"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TemplatesDir != "pages" {
		t.Errorf("templates_dir = %q, want pages", cfg.TemplatesDir)
	}
	if cfg.SiteTitle != "My Gallery" {
		t.Errorf("site_title = %q", cfg.SiteTitle)
	}
	if cfg.WatchDebounceMS != 250 {
		t.Errorf("watch_debounce_ms = %d, want 250", cfg.WatchDebounceMS)
	}
	// Unset fields fall back to defaults
	if cfg.ThumbnailsDir != "thumbnails" {
		t.Errorf("thumbnails_dir = %q, want default", cfg.ThumbnailsDir)
	}
	// Fix table preserves file order
	if len(cfg.Fixes) != 2 || cfg.Fixes[0].Pattern != "old/" || cfg.Fixes[1].Pattern != ".JPG" {
		t.Errorf("unexpected fixes: %v", cfg.Fixes)
	}
}

func TestLoad_InvalidThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	if err := os.WriteFile(path, []byte("color_theme: neon\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ColorTheme != "auto" {
		t.Errorf("color_theme = %q, want auto", cfg.ColorTheme)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	if err := os.WriteFile(path, []byte("templates_dir: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "showcase.yaml")

	original := DefaultConfig()
	original.SiteTitle = "Roundtrip Gallery"
	original.Fixes = []FixRule{{Pattern: "a", Replacement: "b"}}

	if err := original.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.SiteTitle != "Roundtrip Gallery" {
		t.Errorf("site_title = %q", loaded.SiteTitle)
	}
	if len(loaded.Fixes) != 1 || loaded.Fixes[0].Pattern != "a" {
		t.Errorf("fixes did not roundtrip: %v", loaded.Fixes)
	}
}
