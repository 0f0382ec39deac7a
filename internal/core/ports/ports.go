package ports

import (
	"context"

	"showcase/internal/core/domain"
)

// TemplateSource defines the port for enumerating template files. Template
// contents are never read; only names matter.
type TemplateSource interface {
	// List returns every template entry, extension stripped. A missing or
	// unreadable directory is an error (the build aborts before writing).
	List(ctx context.Context) ([]domain.FileEntry, error)
}

// ThumbnailSource defines the port for enumerating thumbnail images.
type ThumbnailSource interface {
	// List returns every recognized image entry, extension stripped.
	List(ctx context.Context) ([]domain.FileEntry, error)
}
