package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showcase/internal/core/services"
	"showcase/internal/render"
	"showcase/pkg/ui"
)

var buildOpen bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the categorized gallery page",
	Long: `Scan the templates and thumbnails directories, match them by name,
classify each matched template into a category, and write the gallery page.

Templates without a matching thumbnail are skipped (not an error); run
'showcase list --orphans' to see them. The output file is overwritten in
full on every build, and nothing is written if either input directory
cannot be read.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildOpen, "open", "o", false, "Open the generated page in the browser")
}

func runBuild(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.FormatRocket("Building gallery..."))

	resp, err := rebuildGallery()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Matched %d templates (%d without thumbnails skipped)", resp.Matched, resp.Skipped)))
	for _, count := range resp.Catalog.Distribution() {
		fmt.Printf("   %s %s\n",
			ui.StyleAccent.Render(fmt.Sprintf("%3d", count.Count)),
			count.Category.DisplayName())
	}
	fmt.Println()
	fmt.Println(ui.FormatMuted("Wrote " + appWorkspace.OutputPath))

	if buildOpen || appConfig.OpenAfterBuild {
		return OpenFile(appWorkspace.OutputPath)
	}
	return nil
}

// rebuildGallery runs the full pipeline: list, match, classify, render,
// write. Shared by build and watch. No partial output: a read failure
// returns before the output file is touched.
func rebuildGallery() (*services.BuildResponse, error) {
	ctx := getContext()

	resp, err := catalogService.Execute(ctx, services.BuildRequest{
		TemplatesDir:  appConfig.TemplatesDir,
		ThumbnailsDir: appConfig.ThumbnailsDir,
	})
	if err != nil {
		return nil, err
	}

	html, err := render.Gallery(render.PageData{
		Title:    appConfig.SiteTitle,
		Subtitle: appConfig.SiteSubtitle,
		Catalog:  resp.Catalog,
	})
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(appWorkspace.OutputPath, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to write gallery: %w", err)
	}

	return resp, nil
}
