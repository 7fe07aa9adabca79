package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cardsmith/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, data string) *summary.Summary {
	t.Helper()
	s, err := summary.Parse([]byte(data))
	require.NoError(t, err)
	return s
}

func TestAuditWithoutAssetRoot(t *testing.T) {
	s := parse(t, `{"download_log_summary": [
		{"folder": "Rare", "filepath": "rare\\a.png", "card_name": "A"},
		{"folder": "Shiny", "filepath": "shiny\\b.png", "card_name": "B"},
		{"filepath": "common\\c.png"},
		{"folder": "Promo", "filepath": "rare/a.png", "card_name": "D"},
		{"folder": "Promo", "card_name": "E"}
	]}`)

	results := NewAuditor(s, "").Audit()

	assert.Equal(t, []string{
		"card-4: image rare/a.png already used by card-1",
	}, results.Errors)
	assert.Equal(t, []string{
		`card-2: unknown folder "Shiny", rarity defaults to common`,
		"card-3: folder missing, rarity defaults to common",
		`card-3: card_name missing, name defaults to "Unknown"`,
		"card-5: filepath missing, image will point at the asset directory",
	}, results.Warnings)
}

func TestAuditImages(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pokemon_by_rarity", "Rare"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pokemon_by_rarity", "Rare", "a.png"), nil, 0o644))

	s := parse(t, `{"download_log_summary": [
		{"folder": "Rare", "filepath": "pokemon_by_rarity\\Rare\\a.png", "card_name": "A"},
		{"folder": "Rare", "filepath": "pokemon_by_rarity\\Rare\\b.png", "card_name": "B"}
	]}`)

	results := NewAuditor(s, root).Audit()
	assert.Equal(t, []string{"card-2: image not found: pokemon_by_rarity/Rare/b.png"}, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestAuditMissingAssetRoot(t *testing.T) {
	s := parse(t, `{"download_log_summary": [{"folder": "Rare", "filepath": "a.png", "card_name": "A"}]}`)

	results := NewAuditor(s, filepath.Join(t.TempDir(), "nope")).Audit()
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "asset root not found")
}

func TestAuditEmptySummary(t *testing.T) {
	results := NewAuditor(parse(t, `{}`), "").Audit()
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{"download_log_summary is empty or missing"}, results.Warnings)
}

func TestAuditNonStringFolder(t *testing.T) {
	s := parse(t, `{"download_log_summary": [{"folder": 3, "filepath": "a.png", "card_name": "A"}]}`)

	results := NewAuditor(s, "").Audit()
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{`card-1: unknown folder "3", rarity defaults to common`}, results.Warnings)
}
