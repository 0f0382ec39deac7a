package repository

import (
	"context"
	"fmt"
	"os"
	"strings"

	"showcase/internal/core/domain"
)

// TemplateRepository implements the TemplateSource port on a directory of
// .html template files.
type TemplateRepository struct {
	dir     string
	exclude string // output file name, so the catalog never lists itself
}

// NewTemplateRepository creates a file-based template source. exclude is
// the generated output filename to skip when it shares the directory.
func NewTemplateRepository(dir, exclude string) *TemplateRepository {
	return &TemplateRepository{
		dir:     dir,
		exclude: exclude,
	}
}

// List returns every template entry, extension stripped. Hidden files and
// the excluded output file are skipped.
func (r *TemplateRepository) List(ctx context.Context) ([]domain.FileEntry, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	var templates []domain.FileEntry
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") || entry.Name() == r.exclude {
			continue
		}

		templates = append(templates, domain.FileEntry{
			Name:     strings.TrimSuffix(entry.Name(), ".html"),
			Filename: entry.Name(),
		})
	}

	return templates, nil
}
