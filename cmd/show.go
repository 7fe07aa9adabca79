package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/cardsmith/internal/ansiart"
	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/summary"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a generated card with ANSI art",
	Long: `Show derives the cards from the download log summary and displays one of them,
with its image rendered as ANSI terminal art next to the generated values.

Card IDs are the ones written by generate: card-1, card-2, ...
Images are looked up relative to the asset root from the config or --asset-root.

Examples:
  cardsmith show card-1
  cardsmith show --input Stats/total_stats.json --asset-root images card-42
  cardsmith show --no-art card-7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		input := stringFlag(cmd, "input", cfg.Input)
		assetRoot := stringFlag(cmd, "asset-root", cfg.AssetRoot)
		noArt, _ := cmd.Flags().GetBool("no-art")

		s, err := summary.Load(input)
		if err != nil {
			return err
		}

		c, err := card.Find(card.FromSummary(s), cardID)
		if err != nil {
			return err
		}

		var art string
		if !noArt {
			imagePath := filepath.Join(assetRoot, filepath.FromSlash(c.Image))
			art, err = ansiart.Cached(cfg.GetCacheDir(), imagePath, ansiart.DefaultWidth, ansiart.DefaultHeight)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: no preview for %s: %v\n", c.ID, err)
				art = ""
			}
		}

		displayCard(c, art)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("input", "i", "", "Path to the download log summary JSON")
	showCmd.Flags().StringP("asset-root", "a", "", "Directory the logged image paths are relative to")
	showCmd.Flags().Bool("no-art", false, "Skip the ANSI art preview")
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// cardInfoLines returns the labelled values shown beside the art
func cardInfoLines(c *card.Card, width int) []string {
	var infoLines []string

	infoLines = append(infoLines, colorize.CyanString("Card:       ")+colorize.HiWhiteString("%s", c.Name))
	infoLines = append(infoLines, colorize.CyanString("ID:         ")+colorize.HiWhiteString("%s", c.ID))
	infoLines = append(infoLines, colorize.CyanString("Rarity:     ")+colorize.HiWhiteString("%s", c.Rarity))
	infoLines = append(infoLines, colorize.CyanString("Value:      ")+colorize.HiWhiteString("%d", c.Value))
	infoLines = append(infoLines, colorize.CyanString("TCGPlayer:  ")+colorize.HiWhiteString("%d", c.TCGPlayerPrice))
	infoLines = append(infoLines, colorize.CyanString("Cardmarket: ")+colorize.HiWhiteString("%d", c.CardMarketPrice))

	if c.Image != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("Image:"))
		infoLines = append(infoLines, wrapText(c.Image, width)...)
	}

	return infoLines
}

// displayCard prints the ANSI art on the left and the card info on the right
func displayCard(c *card.Card, ansiArt string) {
	ansiLines := strings.Split(strings.TrimRight(ansiArt, "\n"), "\n")
	if ansiArt == "" {
		ansiLines = nil
	}

	maxAnsiWidth := 0
	for _, line := range ansiLines {
		maxAnsiWidth = max(maxAnsiWidth, ansiart.VisibleWidth(line))
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing
	if len(ansiLines) == 0 {
		infoStartCol = 0
	}

	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	infoLines := cardInfoLines(c, infoWidth)

	fmt.Println()

	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(ansiLines) {
			fmt.Print(ansiLines[i])
			fmt.Print(strings.Repeat(" ", infoStartCol-ansiart.VisibleWidth(ansiLines[i])))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}

	fmt.Println()
}
