package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FixRule is one ordered entry of the find/replace table applied by the fix
// command. Rules run strictly in the order they appear in the file.
type FixRule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Config holds the showcase project configuration.
type Config struct {
	TemplatesDir  string `yaml:"templates_dir"`
	ThumbnailsDir string `yaml:"thumbnails_dir"`
	OutputFile    string `yaml:"output_file"`
	SiteTitle     string `yaml:"site_title"`
	SiteSubtitle  string `yaml:"site_subtitle"`
	ChartFile     string `yaml:"chart_file"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// Watch Settings
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// Build Settings
	OpenAfterBuild bool `yaml:"open_after_build"`

	// Fix table for known broken references in the generated page
	Fixes []FixRule `yaml:"fixes"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() *Config {
	return &Config{
		TemplatesDir:    "templates",
		ThumbnailsDir:   "thumbnails",
		OutputFile:      "index.html",
		SiteTitle:       "Component Showcase",
		SiteSubtitle:    "Hand-crafted UI templates",
		ChartFile:       "stats.html",
		ColorTheme:      "auto",
		WatchDebounceMS: 500,
		OpenAfterBuild:  false,
		Fixes: []FixRule{
			// Historical breakages in hand-edited gallery pages
			{Pattern: "assets/thumbnails/", Replacement: "thumbnails/"},
			{Pattern: ".PNG", Replacement: ".png"},
			{Pattern: "%20%20", Replacement: "%20"},
		},
	}
}

// Load reads configuration from the specified file path. A missing file is
// not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if cfg.ThumbnailsDir == "" {
		cfg.ThumbnailsDir = "thumbnails"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "index.html"
	}
	if cfg.SiteTitle == "" {
		cfg.SiteTitle = "Component Showcase"
	}
	if cfg.ChartFile == "" {
		cfg.ChartFile = "stats.html"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if !isValidTheme(cfg.ColorTheme) {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isValidTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
