package card

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cardsmith/internal/rarity"
	"github.com/arcanaland/cardsmith/internal/summary"
)

// Card represents one generated card record
type Card struct {
	ID              string // Sequential ID (card-1, card-2, ...)
	Name            string // Display name, unescaped
	Rarity          string // Normalized rarity identifier (e.g. rare_holo)
	Value           int    // Base value for the rarity
	Image           string // Image path relative to the asset root, forward slashes
	TCGPlayerPrice  int
	CardMarketPrice int
}

// FromEntry derives the card at 0-based position index from a download log entry
func FromEntry(index int, e summary.Entry) Card {
	r := rarity.Normalize(e.Folder())
	value := rarity.BaseValue(r)

	return Card{
		ID:              ID(index),
		Name:            e.CardName(),
		Rarity:          r,
		Value:           value,
		Image:           NormalizePath(e.Filepath()),
		TCGPlayerPrice:  TCGPlayerPrice(value),
		CardMarketPrice: CardMarketPrice(value),
	}
}

// FromSummary derives one card per entry, in log order
func FromSummary(s *summary.Summary) []Card {
	cards := make([]Card, 0, len(s.Entries))
	for i, e := range s.Entries {
		cards = append(cards, FromEntry(i, e))
	}
	return cards
}

// ID returns the card ID for a 0-based position
func ID(index int) string {
	return fmt.Sprintf("card-%d", index+1)
}

// TCGPlayerPrice is the base value marked up by 10%, truncated
func TCGPlayerPrice(value int) int {
	return int(float64(value) * 1.1)
}

// CardMarketPrice is the base value marked down by 10%, truncated
func CardMarketPrice(value int) int {
	return int(float64(value) * 0.9)
}

// NormalizePath converts Windows separators in a logged path to forward slashes
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// EscapeName escapes single quotes so the name fits in a single-quoted string literal
func EscapeName(name string) string {
	return strings.ReplaceAll(name, "'", `\'`)
}

// Find returns the card with the given ID
func Find(cards []Card, id string) (*Card, error) {
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i], nil
		}
	}
	return nil, fmt.Errorf("card not found: %s", id)
}
