package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/rarity"
	"github.com/arcanaland/cardsmith/internal/summary"
)

type Results struct {
	Errors   []string
	Warnings []string
}

type Auditor struct {
	Summary   *summary.Summary
	AssetRoot string // Directory entry file paths are relative to; empty skips file checks
	Results   Results
}

func NewAuditor(s *summary.Summary, assetRoot string) *Auditor {
	return &Auditor{
		Summary:   s,
		AssetRoot: assetRoot,
		Results:   Results{},
	}
}

func (a *Auditor) Audit() Results {
	if len(a.Summary.Entries) == 0 {
		a.Results.Warnings = append(a.Results.Warnings, "download_log_summary is empty or missing")
		return a.Results
	}

	a.auditFolders()
	a.auditFields()
	a.auditDuplicates()
	a.auditImages()

	return a.Results
}

// auditFolders warns about entries that will fall back to the default rarity
func (a *Auditor) auditFolders() {
	for i, e := range a.Summary.Entries {
		id := card.ID(i)
		if e.RawFolder == nil {
			a.Results.Warnings = append(a.Results.Warnings,
				fmt.Sprintf("%s: folder missing, rarity defaults to %s", id, rarity.DefaultID))
			continue
		}
		if !rarity.IsKnownLabel(*e.RawFolder) {
			a.Results.Warnings = append(a.Results.Warnings,
				fmt.Sprintf("%s: unknown folder %q, rarity defaults to %s", id, *e.RawFolder, rarity.DefaultID))
		}
	}
}

// auditFields warns about entries missing a name or image path
func (a *Auditor) auditFields() {
	for i, e := range a.Summary.Entries {
		id := card.ID(i)
		if e.RawCardName == nil {
			a.Results.Warnings = append(a.Results.Warnings,
				fmt.Sprintf("%s: card_name missing, name defaults to %q", id, summary.DefaultCardName))
		}
		if e.RawFilepath == nil || *e.RawFilepath == "" {
			a.Results.Warnings = append(a.Results.Warnings,
				fmt.Sprintf("%s: filepath missing, image will point at the asset directory", id))
		}
	}
}

// auditDuplicates reports image paths used by more than one entry
func (a *Auditor) auditDuplicates() {
	seen := make(map[string]string)
	for i, e := range a.Summary.Entries {
		p := card.NormalizePath(e.Filepath())
		if p == "" {
			continue
		}
		id := card.ID(i)
		if first, ok := seen[p]; ok {
			a.Results.Errors = append(a.Results.Errors,
				fmt.Sprintf("%s: image %s already used by %s", id, p, first))
			continue
		}
		seen[p] = id
	}
}

// auditImages checks that every image exists under the asset root
func (a *Auditor) auditImages() {
	if a.AssetRoot == "" {
		return
	}

	if _, err := os.Stat(a.AssetRoot); os.IsNotExist(err) {
		a.Results.Errors = append(a.Results.Errors,
			fmt.Sprintf("asset root not found: %s", a.AssetRoot))
		return
	}

	for i, e := range a.Summary.Entries {
		p := card.NormalizePath(e.Filepath())
		if p == "" {
			continue
		}
		imagePath := filepath.Join(a.AssetRoot, filepath.FromSlash(p))
		if _, err := os.Stat(imagePath); os.IsNotExist(err) {
			a.Results.Errors = append(a.Results.Errors,
				fmt.Sprintf("%s: image not found: %s", card.ID(i), p))
		}
	}
}
