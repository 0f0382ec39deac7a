package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"showcase/internal/core/domain"
)

// imageExtensions are the thumbnail formats the catalog recognizes.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ThumbnailRepository implements the ThumbnailSource port on a directory of
// preview images.
type ThumbnailRepository struct {
	dir string
}

// NewThumbnailRepository creates a file-based thumbnail source.
func NewThumbnailRepository(dir string) *ThumbnailRepository {
	return &ThumbnailRepository{dir: dir}
}

// List returns every image entry, extension stripped. Hidden files and
// unrecognized extensions are skipped.
func (r *ThumbnailRepository) List(ctx context.Context) ([]domain.FileEntry, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnails directory: %w", err)
	}

	var thumbnails []domain.FileEntry
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExtensions[ext] {
			continue
		}

		thumbnails = append(thumbnails, domain.FileEntry{
			Name:     strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Filename: entry.Name(),
		})
	}

	return thumbnails, nil
}
