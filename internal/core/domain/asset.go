package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Asset represents a template paired with its thumbnail, ready for display
// in the generated showcase page.
type Asset struct {
	Name          string // Template filename with the extension stripped
	Slug          string // URL/anchor-safe identifier derived from Name
	Title         string // Display label (defaults to Name)
	Description   string // Generated card description
	Category      Category
	TemplatePath  string // Relative path to the template file
	ThumbnailPath string // Relative path to the matching thumbnail
}

// Category is one of the fixed labels partitioning assets by purpose.
type Category string

const (
	CategoryNavigation  Category = "navigation"
	CategoryInteractive Category = "interactive"
	CategoryContent     Category = "content"
	CategoryForms       Category = "forms"
	CategoryMedia       Category = "media"
	CategoryEcommerce   Category = "ecommerce"
	CategoryData        Category = "data"
	CategoryAdvanced    Category = "advanced"
)

// Categories lists every category in declaration order. Section order in
// the rendered page follows this slice.
var Categories = []Category{
	CategoryNavigation,
	CategoryInteractive,
	CategoryContent,
	CategoryForms,
	CategoryMedia,
	CategoryEcommerce,
	CategoryData,
	CategoryAdvanced,
}

var categoryTitles = map[Category]string{
	CategoryNavigation:  "Navigation",
	CategoryInteractive: "Interactive",
	CategoryContent:     "Content",
	CategoryForms:       "Forms",
	CategoryMedia:       "Media",
	CategoryEcommerce:   "E-Commerce",
	CategoryData:        "Data & Charts",
	CategoryAdvanced:    "Advanced Effects",
}

// DisplayName returns the human-readable section heading for the category.
func (c Category) DisplayName() string {
	if title, ok := categoryTitles[c]; ok {
		return title
	}
	return string(c)
}

// ClassificationRule binds a category to the keywords that select it.
type ClassificationRule struct {
	Category Category
	Keywords []string
}

// ClassificationRules is evaluated top to bottom against the lower-cased
// asset name; the first rule with a matching keyword wins. Names that match
// no rule fall back to CategoryContent. Rule order is part of the contract:
// moving a rule changes how ambiguous names resolve.
var ClassificationRules = []ClassificationRule{
	{CategoryNavigation, []string{"navigation", "navbar", "nav", "sidebar", "header", "footer", "menu", "breadcrumb"}},
	{CategoryInteractive, []string{"button", "toggle", "switch", "slider", "cursor", "hover", "spinner", "loader", "tooltip", "modal"}},
	{CategoryContent, []string{"hero", "card", "testimonial", "blog", "article", "faq", "banner", "landing"}},
	{CategoryForms, []string{"form", "login", "signup", "register", "input", "contact", "newsletter", "search"}},
	{CategoryMedia, []string{"image", "video", "carousel", "slideshow", "lightbox", "player", "photo", "audio"}},
	{CategoryEcommerce, []string{"cart", "product", "pricing", "shop", "checkout", "payment", "store"}},
	{CategoryData, []string{"table", "chart", "graph", "dashboard", "stats", "counter", "timeline"}},
	{CategoryAdvanced, []string{"shader", "webgl", "particle", "3d", "three", "canvas", "parallax", "glass", "neon"}},
}

// Classify assigns exactly one category to a template name. The result
// depends only on the name, so repeated runs always agree.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, rule := range ClassificationRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}
	return CategoryContent
}

var categoryBlurbs = map[Category]string{
	CategoryNavigation:  "navigation component",
	CategoryInteractive: "interactive element",
	CategoryContent:     "content section",
	CategoryForms:       "form layout",
	CategoryMedia:       "media component",
	CategoryEcommerce:   "storefront component",
	CategoryData:        "data display",
	CategoryAdvanced:    "visual effect",
}

// Describe generates the card description for an asset. Deterministic for
// a given name and category, so rebuilds stay byte-identical.
func Describe(name string, category Category) string {
	return fmt.Sprintf("%s — a self-contained %s template.", name, categoryBlurbs[category])
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// GenerateSlug converts an asset name into a lowercase hyphenated
// identifier usable as an HTML anchor.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	slug = slugDashes.ReplaceAllString(slug, "-")
	return slug
}

// NewAsset constructs a fully-populated asset from a template name and the
// relative paths to its files. Assets are immutable after construction.
func NewAsset(name, templatePath, thumbnailPath string) Asset {
	category := Classify(name)
	return Asset{
		Name:          name,
		Slug:          GenerateSlug(name),
		Title:         name,
		Description:   Describe(name, category),
		Category:      category,
		TemplatePath:  templatePath,
		ThumbnailPath: thumbnailPath,
	}
}
