package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/summary"
)

// ErrWrite is returned when the generated file cannot be written
var ErrWrite = errors.New("write output")

// Defaults for the generated TypeScript declaration
const (
	DefaultExportName  = "mockCards"
	DefaultTypeName    = "Card"
	DefaultImagePrefix = "../../assets/images/"
)

// Options controls how records are rendered
type Options struct {
	ExportName  string // Name of the exported const
	TypeName    string // Element type of the array
	ImagePrefix string // Prefix joined to each image path inside require()
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		ExportName:  DefaultExportName,
		TypeName:    DefaultTypeName,
		ImagePrefix: DefaultImagePrefix,
	}
}

// withDefaults fills empty fields with their defaults
func (o Options) withDefaults() Options {
	if o.ExportName == "" {
		o.ExportName = DefaultExportName
	}
	if o.TypeName == "" {
		o.TypeName = DefaultTypeName
	}
	if o.ImagePrefix == "" {
		o.ImagePrefix = DefaultImagePrefix
	}
	return o
}

// Result describes a completed generation
type Result struct {
	Input  string
	Output string
	Cards  int
}

// Generate reads the summary at input, derives the cards and writes the
// TypeScript file to output. Nothing is written if the summary cannot be loaded.
func Generate(input, output string, opts Options) (Result, error) {
	s, err := summary.Load(input)
	if err != nil {
		return Result{}, err
	}

	cards := card.FromSummary(s)
	if err := WriteFile(output, Render(cards, opts)); err != nil {
		return Result{}, err
	}

	return Result{Input: input, Output: output, Cards: len(cards)}, nil
}

// Render formats cards as an exported TypeScript array literal
func Render(cards []card.Card, opts Options) []byte {
	opts = opts.withDefaults()

	records := make([]string, 0, len(cards))
	for _, c := range cards {
		records = append(records, renderCard(c, opts.ImagePrefix))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export const %s: %s[] = [\n", opts.ExportName, opts.TypeName)
	b.WriteString(strings.Join(records, ",\n"))
	b.WriteString("\n];")
	return []byte(b.String())
}

func renderCard(c card.Card, imagePrefix string) string {
	return fmt.Sprintf(`  {
    id: '%s',
    name: '%s',
    rarity: '%s',
    value: %d,
    image: require('%s%s'),
    tcgPlayerPrice: %d,
    cardMarketPrice: %d,
  }`, c.ID, card.EscapeName(c.Name), c.Rarity, c.Value, imagePrefix, c.Image, c.TCGPlayerPrice, c.CardMarketPrice)
}

// WriteFile writes data to a temp file next to path and renames it into place
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create output directory: %v", ErrWrite, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}
