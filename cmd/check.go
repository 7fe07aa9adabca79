package cmd

import (
	"fmt"

	"github.com/arcanaland/cardsmith/internal/audit"
	"github.com/arcanaland/cardsmith/internal/summary"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a download log summary before generating",
	Long: `Check reports entries that will fall back to default values during generation
and, when an asset root is known, images that are missing on disk.
Generation itself never rejects an entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		input := stringFlag(cmd, "input", cfg.Input)
		assetRoot := stringFlag(cmd, "asset-root", cfg.AssetRoot)

		s, err := summary.Load(input)
		if err != nil {
			return err
		}

		results := audit.NewAuditor(s, assetRoot).Audit()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Check Results:")
		fmt.Fprintln(out, "--------------")

		if len(results.Errors) == 0 {
			fmt.Fprintln(out, colorize.GreenString("✅ '%s' has %d entries and no errors.", input, len(s.Entries)))
		} else {
			fmt.Fprintln(out, colorize.RedString("❌ '%s' has %d errors:", input, len(results.Errors)))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, colorize.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("check failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("input", "i", "", "Path to the download log summary JSON")
	checkCmd.Flags().StringP("asset-root", "a", "", "Directory the logged image paths are relative to")
}
