package rarity

// DefaultID is the rarity assigned to any folder label that is not recognized
const DefaultID = "common"

// DefaultValue is the base value for a rarity identifier missing from the value table.
// Normalize never yields such an identifier, so this only applies to direct lookups.
const DefaultValue = 10000

// Tier describes one rarity level
type Tier struct {
	Label string // Folder label as found in the download log (e.g. "Rare Holo EX")
	ID    string // Normalized identifier (e.g. rare_holo_ex)
	Value int    // Base value of a card of this rarity
}

// tiers lists every known rarity, ordered by folder label as the download tool lays them out
var tiers = []Tier{
	{Label: "Common", ID: "common", Value: 5000},
	{Label: "Uncommon", ID: "uncommon", Value: 15000},
	{Label: "Rare", ID: "rare", Value: 50000},
	{Label: "Rare Holo", ID: "rare_holo", Value: 150000},
	{Label: "Rare Holo EX", ID: "rare_holo_ex", Value: 500000},
	{Label: "Rare Holo GX", ID: "rare_holo_gx", Value: 800000},
	{Label: "Rare Holo V", ID: "rare_holo_v", Value: 600000},
	{Label: "Rare Rainbow", ID: "rare_rainbow", Value: 2500000},
	{Label: "Rare Secret", ID: "rare_secret", Value: 5000000},
	{Label: "Promo", ID: "promo", Value: 200000},
}

var (
	labelToID = make(map[string]string, len(tiers))
	idToValue = make(map[string]int, len(tiers))
)

func init() {
	for _, t := range tiers {
		labelToID[t.Label] = t.ID
		idToValue[t.ID] = t.Value
	}
}

// Normalize maps a folder label to its rarity identifier.
// Labels are matched exactly; anything else is DefaultID.
func Normalize(label string) string {
	if id, ok := labelToID[label]; ok {
		return id
	}
	return DefaultID
}

// BaseValue returns the base value for a rarity identifier
func BaseValue(id string) int {
	if v, ok := idToValue[id]; ok {
		return v
	}
	return DefaultValue
}

// IsKnownLabel reports whether label is one of the folder labels in the rarity table
func IsKnownLabel(label string) bool {
	_, ok := labelToID[label]
	return ok
}

// Tiers returns a copy of the known rarity tiers
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}
