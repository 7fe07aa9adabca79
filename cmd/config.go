package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardsmith config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigFilePath()
		if _, err := os.Stat(configPath); err == nil {
			fmt.Println("Config file already exists at:", configPath)
			return nil
		}

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Println("Config file initialized at:", configPath)
		fmt.Println("Edit input, output and asset_root to point at your project.")
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
