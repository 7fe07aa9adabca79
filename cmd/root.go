package cmd

import (
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardsmith",
	Short: "Generate TypeScript card data from downloaded card images",
	Long: `Cardsmith turns the download log summary written by the card image downloader
into a TypeScript module exporting a static array of cards, with rarity,
base value, marketplace prices and an image reference for each card.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/cardsmith/config.toml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig loads the config named by --config, or the user config file if
// there is one. Only config init creates the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadConfigFrom(path)
	}
	return config.LoadExisting()
}

// stringFlag returns the flag value when it was set, otherwise fallback
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}
