package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showcase/internal/core/domain"
	"showcase/pkg/ui"
)

var (
	fixPattern     string
	fixReplacement string
	fixDryRun      bool
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Repair known broken references in the gallery page",
	Long: `Apply the ordered find/replace table from the config ('fixes:') to the
generated gallery page and write it back.

Rules run strictly in table order, so a replacement may itself be rewritten
by a later rule. Use --pattern/--replacement to apply a one-off rule after
the configured table.

Examples:
  showcase fix
  showcase fix --dry-run
  showcase fix -p 'assets/thumbnails/' -r 'thumbnails/'`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().StringVarP(&fixPattern, "pattern", "p", "", "Extra pattern to replace (applied last)")
	fixCmd.Flags().StringVarP(&fixReplacement, "replacement", "r", "", "Replacement for --pattern")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "Report counts without writing")
}

func runFix(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(appWorkspace.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println(ui.FormatError("Gallery page not found"))
			fmt.Println(ui.FormatInfo("Run 'showcase build' first"))
			os.Exit(1)
		}
		return fmt.Errorf("failed to read gallery: %w", err)
	}

	rules := make([]domain.RewriteRule, 0, len(appConfig.Fixes)+1)
	for _, fix := range appConfig.Fixes {
		rules = append(rules, domain.RewriteRule{Pattern: fix.Pattern, Replacement: fix.Replacement})
	}
	if fixPattern != "" {
		rules = append(rules, domain.RewriteRule{Pattern: fixPattern, Replacement: fixReplacement})
	}

	if len(rules) == 0 {
		fmt.Println(ui.FormatWarning("No fix rules configured"))
		return nil
	}

	result := rewriteService.Apply(string(data), rules)

	for _, rc := range result.Counts {
		line := fmt.Sprintf("%q → %q: %d", rc.Rule.Pattern, rc.Rule.Replacement, rc.Count)
		if rc.Count > 0 {
			fmt.Println(ui.FormatInfo(line))
		} else {
			fmt.Println(ui.FormatMuted("  " + line))
		}
	}

	if result.Total == 0 {
		fmt.Println(ui.FormatSuccess("Nothing to fix"))
		return nil
	}

	if fixDryRun {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Dry run: %d replacements not written", result.Total)))
		return nil
	}

	if err := os.WriteFile(appWorkspace.OutputPath, []byte(result.Document), 0644); err != nil {
		return fmt.Errorf("failed to write gallery: %w", err)
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Applied %d replacements", result.Total)))
	return nil
}
