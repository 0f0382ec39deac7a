package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"showcase/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long:  `Print the effective configuration: file values merged over defaults.`,
	Run:   runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("config file", appWorkspace.ConfigPath))
	fmt.Println(ui.RenderKeyValue("templates_dir", appConfig.TemplatesDir))
	fmt.Println(ui.RenderKeyValue("thumbnails_dir", appConfig.ThumbnailsDir))
	fmt.Println(ui.RenderKeyValue("output_file", appConfig.OutputFile))
	fmt.Println(ui.RenderKeyValue("site_title", appConfig.SiteTitle))
	fmt.Println(ui.RenderKeyValue("site_subtitle", appConfig.SiteSubtitle))
	fmt.Println(ui.RenderKeyValue("chart_file", appConfig.ChartFile))
	fmt.Println(ui.RenderKeyValue("color_theme", appConfig.ColorTheme))
	fmt.Println(ui.RenderKeyValue("watch_debounce_ms", strconv.Itoa(appConfig.WatchDebounceMS)))
	fmt.Println(ui.RenderKeyValue("open_after_build", strconv.FormatBool(appConfig.OpenAfterBuild)))

	if len(appConfig.Fixes) > 0 {
		fmt.Println()
		fmt.Println(ui.StyleHeader.Render("Fix table (applied in order)"))
		for i, fix := range appConfig.Fixes {
			fmt.Printf("  %d. %q → %q\n", i+1, fix.Pattern, fix.Replacement)
		}
	}
}
