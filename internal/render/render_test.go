package render

import (
	"strings"
	"testing"

	"showcase/internal/core/domain"
)

func testCatalog() domain.Catalog {
	return domain.NewCatalog([]domain.Asset{
		domain.NewAsset("Login Form", "templates/Login Form.html", "thumbnails/Login Form.png"),
		domain.NewAsset("Sidebar Menu", "templates/Sidebar Menu.html", "thumbnails/Sidebar Menu.png"),
		domain.NewAsset("Mega Menu", "templates/Mega Menu.html", "thumbnails/Mega Menu.png"),
	})
}

func TestGallery(t *testing.T) {
	html, err := Gallery(PageData{
		Title:    "Component Showcase",
		Subtitle: "Hand-crafted UI templates",
		Catalog:  testCatalog(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Component Showcase",
		"Hand-crafted UI templates",
		`<section id="navigation">`,
		`<section id="forms">`,
		"Login Form",
		"Sidebar Menu",
		"3 templates in the collection",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestGallery_OmitsEmptySections(t *testing.T) {
	html, err := Gallery(PageData{
		Title:   "Showcase",
		Catalog: domain.NewCatalog([]domain.Asset{domain.NewAsset("Login Form", "", "")}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, `<section id="forms">`) {
		t.Error("expected forms section")
	}
	for _, absent := range []string{
		`<section id="navigation">`,
		`<section id="media">`,
		`<section id="advanced">`,
	} {
		if strings.Contains(html, absent) {
			t.Errorf("empty section %q should be omitted", absent)
		}
	}
}

func TestGallery_SectionsFollowDeclarationOrder(t *testing.T) {
	html, err := Gallery(PageData{Title: "Showcase", Catalog: testCatalog()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nav := strings.Index(html, `<section id="navigation">`)
	forms := strings.Index(html, `<section id="forms">`)
	if nav == -1 || forms == -1 {
		t.Fatal("expected both navigation and forms sections")
	}
	if nav > forms {
		t.Error("navigation section should precede forms section")
	}
}

func TestGallery_AssetsSortedWithinSection(t *testing.T) {
	html, err := Gallery(PageData{Title: "Showcase", Catalog: testCatalog()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mega := strings.Index(html, `id="mega-menu"`)
	sidebar := strings.Index(html, `id="sidebar-menu"`)
	if mega == -1 || sidebar == -1 {
		t.Fatal("expected both navigation cards")
	}
	if mega > sidebar {
		t.Error("Mega Menu should be rendered before Sidebar Menu")
	}
}

func TestGallery_ByteIdentical(t *testing.T) {
	data := PageData{Title: "Showcase", Subtitle: "sub", Catalog: testCatalog()}

	first, err := Gallery(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Gallery(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatal("identical catalogs rendered differently")
		}
	}
}

func TestCardSnippet(t *testing.T) {
	asset := domain.NewAsset("Login Form", "templates/Login Form.html", "thumbnails/Login Form.png")

	snippet, err := CardSnippet(asset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(snippet, `id="login-form"`) {
		t.Errorf("snippet missing slug anchor: %s", snippet)
	}
	// html/template percent-encodes spaces in URL attributes
	if !strings.Contains(snippet, "thumbnails/Login%20Form.png") {
		t.Errorf("snippet missing encoded thumbnail src: %s", snippet)
	}
	if !strings.Contains(snippet, "Login Form") {
		t.Errorf("snippet missing title: %s", snippet)
	}
}
