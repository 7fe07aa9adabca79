package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/cardsmith/internal/generator"
	"github.com/arcanaland/cardsmith/internal/rarity"
	"github.com/arcanaland/cardsmith/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "total_stats.json")
	output := filepath.Join(dir, "src", "card_data_output.ts")
	require.NoError(t, os.WriteFile(input, []byte(`{"download_log_summary": [{"folder": "Rare Holo EX", "card_name": "Mewtwo EX", "filepath": "ex\\mewtwo.png"}]}`), 0o644))

	cfgPath := filepath.Join(dir, "config.toml")
	cfg := fmt.Sprintf("input = %q\noutput = %q\nexport_name = \"cards\"\n", input, filepath.Join(dir, "ignored.ts"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs([]string{"generate", "--config", cfgPath, "--input", input, "--output", output})
	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, out.String(), "Done")
	assert.Contains(t, out.String(), "1 cards written to "+output)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got), "export const cards: Card[] = [\n"))
	assert.Contains(t, string(got), "rarity: 'rare_holo_ex',")
	assert.Contains(t, string(got), "tcgPlayerPrice: 550000,")
	assert.NoFileExists(t, filepath.Join(dir, "ignored.ts"))
}

func TestGenerateCommandFailures(t *testing.T) {
	tt := map[string]struct {
		input    string // summary contents; empty means no file
		output   func(dir string) string
		expected error
	}{
		"missing input": {
			output:   func(dir string) string { return filepath.Join(dir, "cards.ts") },
			expected: summary.ErrRead,
		},
		"malformed json": {
			input:    `{"download_log_summary": [`,
			output:   func(dir string) string { return filepath.Join(dir, "cards.ts") },
			expected: summary.ErrParse,
		},
		"unwritable output": {
			input: `{"download_log_summary": [{"folder": "Rare"}]}`,
			output: func(dir string) string {
				blocker := filepath.Join(dir, "blocker")
				require.NoError(t, os.WriteFile(blocker, nil, 0o644))
				return filepath.Join(blocker, "cards.ts")
			},
			expected: generator.ErrWrite,
		},
	}

	for tn, tc := range tt {
		t.Run(tn, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

			input := filepath.Join(dir, "total_stats.json")
			if tc.input != "" {
				require.NoError(t, os.WriteFile(input, []byte(tc.input), 0o644))
			}
			output := tc.output(dir)

			var out bytes.Buffer
			RootCmd.SetOut(&out)
			defer RootCmd.SetOut(nil)

			RootCmd.SetArgs([]string{"generate", "--config", "", "--input", input, "--output", output})
			err := RootCmd.Execute()

			assert.ErrorIs(t, err, tc.expected)
			assert.NotContains(t, out.String(), "Done")
			assert.NoFileExists(t, output)
			assert.NoFileExists(t, output+".tmp")
		})
	}
}

func TestGenerateCommandLeavesConfigAlone(t *testing.T) {
	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	input := filepath.Join(dir, "total_stats.json")
	output := filepath.Join(dir, "cards.ts")
	require.NoError(t, os.WriteFile(input, []byte(`{"download_log_summary": []}`), 0o644))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs([]string{"generate", "--config", "", "--input", input, "--output", output})
	require.NoError(t, RootCmd.Execute())

	assert.FileExists(t, output)
	assert.NoDirExists(t, xdg)
}

func TestGenerateCommandUnusableConfigHome(t *testing.T) {
	dir := t.TempDir()
	home := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(home, nil, 0o644))
	t.Setenv("XDG_CONFIG_HOME", home)

	input := filepath.Join(dir, "total_stats.json")
	output := filepath.Join(dir, "cards.ts")
	require.NoError(t, os.WriteFile(input, []byte(`{"download_log_summary": [{"card_name": "Mew"}]}`), 0o644))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs([]string{"generate", "--config", "", "--input", input, "--output", output})
	require.NoError(t, RootCmd.Execute())

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "name: 'Mew',")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	input := filepath.Join(dir, "total_stats.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"download_log_summary": [
		{"folder": "Rare", "filepath": "a.png", "card_name": "A"},
		{"folder": "Shiny", "filepath": "b.png", "card_name": "B"}
	]}`), 0o644))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs([]string{"check", "--config", "", "--input", input, "--asset-root", ""})
	require.NoError(t, RootCmd.Execute())

	assert.Contains(t, out.String(), "has 2 entries and no errors.")
	assert.Contains(t, out.String(), "Warnings:")
	assert.Contains(t, out.String(), `1. card-2: unknown folder "Shiny", rarity defaults to common`)
}

func TestRenderTiers(t *testing.T) {
	out := renderTiers(rarity.Tiers())
	for _, tier := range rarity.Tiers() {
		assert.Contains(t, out, tier.Label)
		assert.Contains(t, out, tier.ID)
	}
	assert.Contains(t, out, "5500000")
	assert.Contains(t, out, "4500000")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("", 20))
	assert.Equal(t, []string{"pokemon_by_rarity/Rare", "Secret/pikachu.png"}, wrapText("pokemon_by_rarity/Rare Secret/pikachu.png", 24))
	assert.Equal(t, []string{"a b c"}, wrapText("a b c", 3))
}
