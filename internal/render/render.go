// Package render turns a catalog into the final showcase HTML document.
// Rendering is pure: the same catalog always produces byte-identical output.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"showcase/internal/core/domain"
)

//go:embed gallery.html.tmpl
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "gallery.html.tmpl"))

// PageData is everything the gallery template needs.
type PageData struct {
	Title    string
	Subtitle string
	Catalog  domain.Catalog
}

// Gallery renders the complete catalog page.
func Gallery(data PageData) (string, error) {
	var b strings.Builder
	if err := page.ExecuteTemplate(&b, "gallery", data); err != nil {
		return "", fmt.Errorf("failed to render gallery: %w", err)
	}
	return b.String(), nil
}

// CardSnippet renders a single asset card, e.g. for pasting into a page by
// hand.
func CardSnippet(asset domain.Asset) (string, error) {
	var b strings.Builder
	if err := page.ExecuteTemplate(&b, "card", asset); err != nil {
		return "", fmt.Errorf("failed to render card: %w", err)
	}
	return b.String(), nil
}
