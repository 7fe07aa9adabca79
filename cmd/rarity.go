package cmd

import (
	"fmt"
	"strconv"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/rarity"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// rarityCmd represents the rarity command group
var rarityCmd = &cobra.Command{
	Use:   "rarity",
	Short: "Inspect the rarity tiers",
}

// rarityListCmd represents the rarity ls command
var rarityListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List rarity tiers with their values and prices",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(renderTiers(rarity.Tiers()))
		fmt.Printf("Unknown folders map to %s.\n", rarity.DefaultID)
	},
}

func renderTiers(tiers []rarity.Tier) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Folder", "Rarity", "Value", "TCGPlayer", "Cardmarket"})

	for _, t := range tiers {
		tw.AppendRow(table.Row{
			t.Label,
			t.ID,
			strconv.Itoa(t.Value),
			strconv.Itoa(card.TCGPlayerPrice(t.Value)),
			strconv.Itoa(card.CardMarketPrice(t.Value)),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func init() {
	RootCmd.AddCommand(rarityCmd)
	rarityCmd.AddCommand(rarityListCmd)
}
