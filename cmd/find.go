package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"showcase/internal/core/domain"
	"showcase/internal/core/services"
	"showcase/internal/render"
	"showcase/pkg/ui"
)

var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Fuzzy-find an asset and copy its card markup",
	Long: `Search the matched assets by name, category or description.

With a query, assets are filtered by substring first; without one, every
asset is offered. The selected asset's gallery card HTML is copied to the
clipboard for pasting into a hand-edited page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := catalogService.Execute(ctx, services.BuildRequest{
		TemplatesDir:  appConfig.TemplatesDir,
		ThumbnailsDir: appConfig.ThumbnailsDir,
	})
	if err != nil {
		return err
	}

	assets := resp.Catalog.Assets()
	if len(args) > 0 {
		query := strings.ToLower(args[0])
		var filtered []domain.Asset
		for _, asset := range assets {
			if strings.Contains(strings.ToLower(asset.Name), query) ||
				strings.Contains(string(asset.Category), query) ||
				strings.Contains(strings.ToLower(asset.Description), query) {
				filtered = append(filtered, asset)
			}
		}
		assets = filtered
	}

	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("No matching assets found."))
		return nil
	}

	idx, err := fuzzyfinder.Find(
		assets,
		func(i int) string {
			return fmt.Sprintf("%s  [%s]", assets[i].Name, assets[i].Category)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			asset := assets[i]

			var s strings.Builder
			s.WriteString(fmt.Sprintf("Name: %s\n", ui.StyleBold.Render(asset.Name)))
			s.WriteString(fmt.Sprintf("Category: %s\n", asset.Category.DisplayName()))
			s.WriteString(fmt.Sprintf("Template: %s\n", asset.TemplatePath))
			s.WriteString(fmt.Sprintf("Thumbnail: %s\n", asset.ThumbnailPath))
			s.WriteString("\n")
			s.WriteString(asset.Description)
			return s.String()
		}),
	)
	if err != nil {
		fmt.Println(ui.FormatInfo("Selection cancelled."))
		return nil
	}

	selected := assets[idx]
	snippet, err := render.CardSnippet(selected)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Selected: " + selected.Name))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Card HTML (Copied):"))
	fmt.Println(snippet)

	if err := clipboard.WriteAll(snippet); err != nil {
		fmt.Println(ui.FormatMuted("(Clipboard access failed)"))
	}

	return nil
}
