package domain

import "sort"

// FileEntry is a directory listing entry: the extension-stripped name and
// the filename it came from.
type FileEntry struct {
	Name     string
	Filename string
}

// Section is one category's worth of assets in the rendered catalog.
type Section struct {
	Category Category
	Assets   []Asset
}

// Catalog is the complete categorized set of matched assets. Sections
// appear in category declaration order; empty categories are omitted.
type Catalog struct {
	Sections []Section
	Total    int
}

// NewCatalog groups assets by category. Assets within a section are sorted
// lexicographically by name so rebuilds on unchanged inputs are
// byte-identical regardless of filesystem enumeration order.
func NewCatalog(assets []Asset) Catalog {
	byCategory := make(map[Category][]Asset)
	for _, asset := range assets {
		byCategory[asset.Category] = append(byCategory[asset.Category], asset)
	}

	catalog := Catalog{}
	for _, category := range Categories {
		group := byCategory[category]
		if len(group) == 0 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].Name < group[j].Name
		})
		catalog.Sections = append(catalog.Sections, Section{
			Category: category,
			Assets:   group,
		})
		catalog.Total += len(group)
	}

	return catalog
}

// Assets flattens the catalog back into a single slice, preserving section
// order.
func (c Catalog) Assets() []Asset {
	assets := make([]Asset, 0, c.Total)
	for _, section := range c.Sections {
		assets = append(assets, section.Assets...)
	}
	return assets
}

// CategoryCount is one row of the catalog's category distribution.
type CategoryCount struct {
	Category Category
	Count    int
}

// Distribution returns per-category asset counts in declaration order,
// skipping empty categories.
func (c Catalog) Distribution() []CategoryCount {
	counts := make([]CategoryCount, 0, len(c.Sections))
	for _, section := range c.Sections {
		counts = append(counts, CategoryCount{
			Category: section.Category,
			Count:    len(section.Assets),
		})
	}
	return counts
}

// RewriteRule is one entry of the ordered find/replace table applied by the
// fix operation. Rules run in table order; later rules see earlier rules'
// output.
type RewriteRule struct {
	Pattern     string
	Replacement string
}
