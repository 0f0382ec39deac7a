package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"showcase/pkg/config"
	"showcase/pkg/ui"
	"showcase/pkg/workspace"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a showcase project",
	Long: `Set up the showcase directory structure in the target directory:
  - templates/      : Self-contained HTML template files
  - thumbnails/     : Preview images, one per template, matched by name
  - showcase.yaml   : Project configuration`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	ws, err := workspace.New(rootDir, cfg.TemplatesDir, cfg.ThumbnailsDir, cfg.OutputFile, cfg.ChartFile)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to resolve project directory"))
		return err
	}

	if ws.Exists() {
		fmt.Println(ui.FormatWarning("Project already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + ws.RootPath))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing showcase project..."))
	fmt.Println()

	if err := ws.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to create directories"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Directories created"))

	if err := cfg.Save(ws.ConfigPath); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
		// Don't fail - defaults apply without a file
	} else {
		fmt.Println(ui.FormatSuccess("Default config (showcase.yaml) created"))
	}

	fmt.Println()
	fmt.Println(ui.FormatInfo("Drop templates into " + ws.TemplatesPath))
	fmt.Println(ui.FormatInfo("Drop same-named thumbnails into " + ws.ThumbnailsPath))
	fmt.Println(ui.FormatInfo("Then run 'showcase build'"))

	return nil
}
