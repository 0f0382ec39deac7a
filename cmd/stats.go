package cmd

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"showcase/internal/core/domain"
	"showcase/internal/core/services"
	"showcase/pkg/ui"
)

var statsChart bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the category distribution of the collection",
	Long: `Analyze the collection and display per-category asset counts.

Use --chart to also write an HTML bar chart next to the gallery.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "Write an HTML bar chart of the distribution")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := catalogService.Execute(ctx, services.BuildRequest{
		TemplatesDir:  appConfig.TemplatesDir,
		ThumbnailsDir: appConfig.ThumbnailsDir,
	})
	if err != nil {
		return err
	}

	dist := resp.Catalog.Distribution()
	if len(dist) == 0 {
		fmt.Println(ui.FormatWarning("Nothing to count: no matched templates"))
		return nil
	}

	max := 0
	for _, count := range dist {
		if count.Count > max {
			max = count.Count
		}
	}

	fmt.Println(ui.FormatTitle("Collection"))
	fmt.Println()
	for _, count := range dist {
		fmt.Printf("  %-18s %3d  %s\n",
			count.Category.DisplayName(),
			count.Count,
			ui.RenderMeter(count.Count, max, 30))
	}
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d assets, %d templates without thumbnails", resp.Matched, resp.Skipped)))

	if statsChart {
		if err := writeDistributionChart(dist, appWorkspace.ChartPath); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Chart written to " + appWorkspace.ChartPath))
	}

	return nil
}

// writeDistributionChart renders the category distribution as an HTML bar
// chart.
func writeDistributionChart(dist []domain.CategoryCount, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    appConfig.SiteTitle,
			Subtitle: "Assets per category",
		}),
	)

	names := make([]string, 0, len(dist))
	values := make([]opts.BarData, 0, len(dist))
	for _, count := range dist {
		names = append(names, count.Category.DisplayName())
		values = append(values, opts.BarData{Value: count.Count})
	}
	bar.SetXAxis(names).AddSeries("assets", values)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
