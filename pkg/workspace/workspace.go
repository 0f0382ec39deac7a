package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFilename is the per-project configuration file name.
const ConfigFilename = "showcase.yaml"

// Workspace represents a showcase project directory: the templates and
// thumbnails it catalogs and the generated output alongside them. Unlike a
// home-directory vault, a workspace is project-local because the gallery
// ships with the site it indexes.
type Workspace struct {
	RootPath       string
	TemplatesPath  string
	ThumbnailsPath string
	OutputPath     string
	ChartPath      string
	ConfigPath     string
}

// New resolves a workspace rooted at root with the given directory and file
// names (normally from config).
func New(root, templatesDir, thumbnailsDir, outputFile, chartFile string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	return &Workspace{
		RootPath:       abs,
		TemplatesPath:  filepath.Join(abs, templatesDir),
		ThumbnailsPath: filepath.Join(abs, thumbnailsDir),
		OutputPath:     filepath.Join(abs, outputFile),
		ChartPath:      filepath.Join(abs, chartFile),
		ConfigPath:     filepath.Join(abs, ConfigFilename),
	}, nil
}

// ConfigFile returns the config path for a workspace root without resolving
// the rest of the layout (the config itself names the directories).
func ConfigFile(root string) string {
	return filepath.Join(root, ConfigFilename)
}

// Exists reports whether the workspace looks initialized (the templates
// directory is present).
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.TemplatesPath)
	return err == nil && info.IsDir()
}

// Initialize creates the workspace directory structure.
func (w *Workspace) Initialize() error {
	for _, dir := range []string{w.RootPath, w.TemplatesPath, w.ThumbnailsPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
