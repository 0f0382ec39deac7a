package services

import (
	"context"
	"fmt"
	"path"
	"sort"

	"showcase/internal/core/domain"
	"showcase/internal/core/ports"
)

// CatalogService builds the categorized asset catalog from the template and
// thumbnail listings. It performs no I/O beyond the injected sources and no
// writes: rendering and the file write happen at the command boundary.
type CatalogService struct {
	templates  ports.TemplateSource
	thumbnails ports.ThumbnailSource
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(templates ports.TemplateSource, thumbnails ports.ThumbnailSource) *CatalogService {
	return &CatalogService{
		templates:  templates,
		thumbnails: thumbnails,
	}
}

// BuildRequest carries the directory names used for the relative paths
// embedded in asset cards.
type BuildRequest struct {
	TemplatesDir  string
	ThumbnailsDir string
}

// BuildResponse is the result of a catalog build.
type BuildResponse struct {
	Catalog          domain.Catalog
	Matched          int
	Skipped          int      // templates with no matching thumbnail
	SkippedTemplates []string // their names, sorted, for diagnostics
}

// Execute builds the catalog: templates whose stripped name exactly matches
// a thumbnail name (case-sensitive) become assets; the rest are silently
// skipped. Deterministic for fixed listings.
func (s *CatalogService) Execute(ctx context.Context, req BuildRequest) (*BuildResponse, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	thumbnails, err := s.thumbnails.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list thumbnails: %w", err)
	}

	thumbByName := make(map[string]domain.FileEntry, len(thumbnails))
	for _, thumb := range thumbnails {
		thumbByName[thumb.Name] = thumb
	}

	var assets []domain.Asset
	var skipped []string
	for _, tpl := range templates {
		thumb, ok := thumbByName[tpl.Name]
		if !ok {
			skipped = append(skipped, tpl.Name)
			continue
		}
		assets = append(assets, domain.NewAsset(
			tpl.Name,
			path.Join(req.TemplatesDir, tpl.Filename),
			path.Join(req.ThumbnailsDir, thumb.Filename),
		))
	}
	sort.Strings(skipped)

	return &BuildResponse{
		Catalog:          domain.NewCatalog(assets),
		Matched:          len(assets),
		Skipped:          len(skipped),
		SkippedTemplates: skipped,
	}, nil
}

// OrphanReport lists the entries the match filter drops: templates without
// a thumbnail and thumbnails no template refers to.
type OrphanReport struct {
	Templates  []string
	Thumbnails []string
}

// Orphans reports both sides of the unmatched set, sorted by name.
func (s *CatalogService) Orphans(ctx context.Context) (*OrphanReport, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	thumbnails, err := s.thumbnails.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list thumbnails: %w", err)
	}

	templateNames := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		templateNames[tpl.Name] = true
	}
	thumbNames := make(map[string]bool, len(thumbnails))
	for _, thumb := range thumbnails {
		thumbNames[thumb.Name] = true
	}

	report := &OrphanReport{}
	for _, tpl := range templates {
		if !thumbNames[tpl.Name] {
			report.Templates = append(report.Templates, tpl.Name)
		}
	}
	for _, thumb := range thumbnails {
		if !templateNames[thumb.Name] {
			report.Thumbnails = append(report.Thumbnails, thumb.Name)
		}
	}
	sort.Strings(report.Templates)
	sort.Strings(report.Thumbnails)

	return report, nil
}
