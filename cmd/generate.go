package cmd

import (
	"fmt"

	"github.com/arcanaland/cardsmith/internal/generator"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the TypeScript card array from a download log summary",
	Long: `Generate reads the download_log_summary list from the stats file and writes
a TypeScript module declaring one card object per entry, in log order.

Paths default to the values in the config file and can be overridden with flags.

Examples:
  cardsmith generate
  cardsmith generate --input Stats/total_stats.json --output src/data/cards.ts`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		input := stringFlag(cmd, "input", cfg.Input)
		output := stringFlag(cmd, "output", cfg.Output)

		opts := cfg.GeneratorOptions()
		opts.ExportName = stringFlag(cmd, "export-name", opts.ExportName)
		opts.TypeName = stringFlag(cmd, "type-name", opts.TypeName)
		opts.ImagePrefix = stringFlag(cmd, "image-prefix", opts.ImagePrefix)

		result, err := generator.Generate(input, output, opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.GreenString("Done"))
		fmt.Fprintf(out, "%d cards written to %s\n", result.Cards, result.Output)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("input", "i", "", "Path to the download log summary JSON")
	generateCmd.Flags().StringP("output", "o", "", "Path of the TypeScript file to write")
	generateCmd.Flags().String("export-name", "", "Name of the exported array")
	generateCmd.Flags().String("type-name", "", "Element type of the exported array")
	generateCmd.Flags().String("image-prefix", "", "Prefix for image paths inside require()")
}
