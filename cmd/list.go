package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"showcase/internal/core/services"
	"showcase/pkg/ui"
)

var (
	listCategory string
	listOrphans  bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List matched assets or orphaned files",
	Aliases: []string{"ls"},
	Long: `List every template/thumbnail pair that would appear in the gallery,
with its assigned category.

Examples:
  showcase list
  showcase list --category navigation
  showcase list --orphans`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only show assets in this category")
	listCmd.Flags().BoolVar(&listOrphans, "orphans", false, "Show unmatched templates and unused thumbnails instead")
}

func runList(cmd *cobra.Command, args []string) error {
	if listOrphans {
		return runListOrphans()
	}

	ctx := getContext()
	resp, err := catalogService.Execute(ctx, services.BuildRequest{
		TemplatesDir:  appConfig.TemplatesDir,
		ThumbnailsDir: appConfig.ThumbnailsDir,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to scan the collection"))
		return err
	}

	assets := resp.Catalog.Assets()
	if listCategory != "" {
		filtered := assets[:0]
		for _, asset := range assets {
			if string(asset.Category) == listCategory {
				filtered = append(filtered, asset)
			}
		}
		assets = filtered
	}

	if len(assets) == 0 {
		if listCategory != "" {
			fmt.Println(ui.FormatWarning("No assets in category: " + listCategory))
		} else {
			fmt.Println(ui.FormatWarning("No matched templates found"))
			fmt.Println(ui.FormatInfo("Add an .html template and a same-named thumbnail image"))
		}
		return nil
	}

	if listCategory != "" {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Assets (category: %s)", listCategory)))
	} else {
		fmt.Println(ui.FormatTitle("Assets"))
	}
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 30, Align: "left"},
		{Header: "Category", Width: 14, Align: "left"},
		{Header: "Thumbnail", Width: 35, Align: "left"},
	})
	for _, asset := range assets {
		table.AddRow([]string{
			truncate(asset.Name, 30),
			string(asset.Category),
			truncate(asset.ThumbnailPath, 35),
		})
	}
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d assets (%d templates without thumbnails)", len(assets), resp.Skipped)))

	return nil
}

func runListOrphans() error {
	report, err := catalogService.Orphans(getContext())
	if err != nil {
		return err
	}

	if len(report.Templates) == 0 && len(report.Thumbnails) == 0 {
		fmt.Println(ui.FormatSuccess("Every template has a thumbnail and vice versa"))
		return nil
	}

	if len(report.Templates) > 0 {
		fmt.Println(ui.FormatTitle("Templates without thumbnails"))
		for _, name := range report.Templates {
			fmt.Println(ui.StyleWarning.Render("  • ") + name)
		}
		fmt.Println()
	}
	if len(report.Thumbnails) > 0 {
		fmt.Println(ui.FormatTitle("Thumbnails without templates"))
		for _, name := range report.Thumbnails {
			fmt.Println(ui.StyleMuted.Render("  • ") + name)
		}
	}

	return nil
}
