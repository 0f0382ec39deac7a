package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showcase/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the showcase project",
	Long: `Diagnose issues with the project setup.

Checks for:
  - Templates and thumbnails directories
  - Configuration file
  - Generated gallery page
  - Templates without thumbnails (and vice versa)`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("Showcase Doctor"))
	fmt.Println()

	checkStep("Templates Directory", func() error {
		if _, err := os.Stat(appWorkspace.TemplatesPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appWorkspace.TemplatesPath)
		}
		return nil
	})

	checkStep("Thumbnails Directory", func() error {
		if _, err := os.Stat(appWorkspace.ThumbnailsPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appWorkspace.ThumbnailsPath)
		}
		return nil
	})

	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing (defaults apply; 'showcase init' creates one)")
		}
		return nil
	})

	checkStep("Gallery Page", func() error {
		if _, err := os.Stat(appWorkspace.OutputPath); os.IsNotExist(err) {
			return fmt.Errorf("not generated yet (run 'showcase build')")
		}
		return nil
	})

	checkStep("Thumbnail Coverage", func() error {
		report, err := catalogService.Orphans(getContext())
		if err != nil {
			return err
		}
		if len(report.Templates) > 0 {
			return fmt.Errorf("%d templates have no thumbnail (see 'showcase list --orphans')", len(report.Templates))
		}
		if len(report.Thumbnails) > 0 {
			return fmt.Errorf("%d thumbnails have no template", len(report.Thumbnails))
		}
		return nil
	})
}

func checkStep(name string, check func() error) {
	if err := check(); err != nil {
		fmt.Printf("%s %s: %s\n", ui.StyleWarning.Render(ui.IconWarning), ui.StyleBold.Render(name), err.Error())
		return
	}
	fmt.Printf("%s %s\n", ui.StyleSuccess.Render(ui.IconSuccess), ui.StyleBold.Render(name))
}
