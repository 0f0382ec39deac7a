package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showcase/internal/adapters/repository"
	"showcase/internal/core/services"
	"showcase/pkg/config"
	"showcase/pkg/ui"
	"showcase/pkg/workspace"
)

var (
	// Global workspace and config
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Services
	catalogService *services.CatalogService
	rewriteService *services.RewriteService

	// Repositories
	templateRepo  *repository.TemplateRepository
	thumbnailRepo *repository.ThumbnailRepository

	// Flags
	rootDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Showcase - a gallery builder for static UI templates",
	Long: ui.StyleTitle.Render("Showcase") + " - UI Template Gallery Builder\n\n" +
		"Scans a directory of HTML templates and their thumbnails, classifies\n" +
		"each template into a category by name, and generates a categorized\n" +
		"gallery page for the collection.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "Showcase project directory")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init command
	if cmd.Name() == "init" {
		return nil
	}

	// Load config first: it names the workspace layout
	cfg, err := config.Load(workspace.ConfigFile(rootDir))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)

	ws, err := workspace.New(rootDir, cfg.TemplatesDir, cfg.ThumbnailsDir, cfg.OutputFile, cfg.ChartFile)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	appWorkspace = ws

	// Check the workspace exists (doctor runs anyway, to diagnose)
	if !appWorkspace.Exists() && cmd.Name() != "doctor" {
		fmt.Println(ui.FormatError("Showcase project not initialized"))
		fmt.Println(ui.FormatInfo("Run 'showcase init' to set up the directory structure"))
		os.Exit(1)
	}

	// Initialize repositories
	templateRepo = repository.NewTemplateRepository(appWorkspace.TemplatesPath, cfg.OutputFile)
	thumbnailRepo = repository.NewThumbnailRepository(appWorkspace.ThumbnailsPath)

	// Initialize services
	catalogService = services.NewCatalogService(templateRepo, thumbnailRepo)
	rewriteService = services.NewRewriteService()

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
