package domain

import (
	"reflect"
	"testing"
)

func TestNewCatalog_GroupsInDeclarationOrder(t *testing.T) {
	assets := []Asset{
		NewAsset("Shader Background", "t/Shader Background.html", "th/Shader Background.png"),
		NewAsset("Login Form", "t/Login Form.html", "th/Login Form.png"),
		NewAsset("Sidebar Menu", "t/Sidebar Menu.html", "th/Sidebar Menu.png"),
	}

	catalog := NewCatalog(assets)

	expected := []Category{CategoryNavigation, CategoryForms, CategoryAdvanced}
	var got []Category
	for _, section := range catalog.Sections {
		got = append(got, section.Category)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("section order = %v, want %v", got, expected)
	}
	if catalog.Total != 3 {
		t.Errorf("total = %d, want 3", catalog.Total)
	}
}

func TestNewCatalog_OmitsEmptyCategories(t *testing.T) {
	catalog := NewCatalog([]Asset{
		NewAsset("Sidebar Menu", "", ""),
	})

	if len(catalog.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(catalog.Sections))
	}
	if catalog.Sections[0].Category != CategoryNavigation {
		t.Errorf("expected navigation section, got %q", catalog.Sections[0].Category)
	}
}

func TestNewCatalog_SortsAssetsByName(t *testing.T) {
	catalog := NewCatalog([]Asset{
		NewAsset("Sticky Header", "", ""),
		NewAsset("Breadcrumb Trail", "", ""),
		NewAsset("Mega Menu", "", ""),
	})

	section := catalog.Sections[0]
	names := []string{section.Assets[0].Name, section.Assets[1].Name, section.Assets[2].Name}
	expected := []string{"Breadcrumb Trail", "Mega Menu", "Sticky Header"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("asset order = %v, want %v", names, expected)
	}
}

func TestNewCatalog_EveryAssetAppearsExactlyOnce(t *testing.T) {
	input := []Asset{
		NewAsset("Login Form", "", ""),
		NewAsset("Sidebar Menu", "", ""),
		NewAsset("Unknown Widget", "", ""),
		NewAsset("Shopping Cart Drawer", "", ""),
	}

	catalog := NewCatalog(input)

	seen := make(map[string]int)
	for _, section := range catalog.Sections {
		for _, asset := range section.Assets {
			seen[asset.Name]++
		}
	}

	for _, asset := range input {
		if seen[asset.Name] != 1 {
			t.Errorf("asset %q appears %d times, want exactly 1", asset.Name, seen[asset.Name])
		}
	}
	if catalog.Total != len(input) {
		t.Errorf("total = %d, want %d", catalog.Total, len(input))
	}
}

func TestNewCatalog_Deterministic(t *testing.T) {
	build := func() Catalog {
		// Deliberately unsorted input order
		return NewCatalog([]Asset{
			NewAsset("Mega Menu", "", ""),
			NewAsset("Breadcrumb Trail", "", ""),
			NewAsset("Login Form", "", ""),
			NewAsset("Analytics Dashboard", "", ""),
		})
	}

	first := build()
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(build(), first) {
			t.Fatal("catalog differs between identical builds")
		}
	}
}

func TestCatalog_Distribution(t *testing.T) {
	catalog := NewCatalog([]Asset{
		NewAsset("Sidebar Menu", "", ""),
		NewAsset("Mega Menu", "", ""),
		NewAsset("Login Form", "", ""),
	})

	dist := catalog.Distribution()
	expected := []CategoryCount{
		{CategoryNavigation, 2},
		{CategoryForms, 1},
	}
	if !reflect.DeepEqual(dist, expected) {
		t.Errorf("distribution = %v, want %v", dist, expected)
	}
}

func TestCatalog_Assets(t *testing.T) {
	catalog := NewCatalog([]Asset{
		NewAsset("Login Form", "", ""),
		NewAsset("Sidebar Menu", "", ""),
	})

	flat := catalog.Assets()
	if len(flat) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(flat))
	}
	// Navigation is declared before forms
	if flat[0].Name != "Sidebar Menu" || flat[1].Name != "Login Form" {
		t.Errorf("unexpected flatten order: %q, %q", flat[0].Name, flat[1].Name)
	}
}
