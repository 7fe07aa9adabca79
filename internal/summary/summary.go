package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrRead is returned when the summary file is missing or cannot be read
	ErrRead = errors.New("read summary")
	// ErrParse is returned when the summary file is not valid JSON or not shaped like a download log
	ErrParse = errors.New("parse summary")
)

// Defaults applied to entry fields that are absent
const (
	DefaultFolder   = "Common"
	DefaultFilepath = ""
	DefaultCardName = "Unknown"
)

// Keys read from the stats document. Matching is exact and case-sensitive.
const (
	EntriesKey  = "download_log_summary"
	FolderKey   = "folder"
	FilepathKey = "filepath"
	CardNameKey = "card_name"
)

// Summary is the stats document written by the card image downloader
type Summary struct {
	Entries []Entry
}

// Entry is one downloaded card image in the download log.
// Fields are pointers so an absent key can be told apart from an empty string.
// A folder that is not a JSON string holds its raw JSON text, which never
// matches a rarity label.
type Entry struct {
	RawFolder   *string
	RawFilepath *string
	RawCardName *string
}

// Folder returns the rarity folder label, or DefaultFolder when absent
func (e Entry) Folder() string {
	return valueOr(e.RawFolder, DefaultFolder)
}

// Filepath returns the image path relative to the asset root, or DefaultFilepath when absent
func (e Entry) Filepath() string {
	return valueOr(e.RawFilepath, DefaultFilepath)
}

// CardName returns the card's display name, or DefaultCardName when absent
func (e Entry) CardName() string {
	return valueOr(e.RawCardName, DefaultCardName)
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// Load reads and parses a summary file
func Load(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a summary document. A missing or null
// download_log_summary key yields a summary with no entries.
func Parse(data []byte) (*Summary, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrParse)
	}

	raw, ok := doc[EntriesKey]
	if !ok || isNull(raw) {
		return &Summary{}, nil
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, EntriesKey, err)
	}

	s := &Summary{Entries: make([]Entry, 0, len(items))}
	for i, item := range items {
		e, err := parseEntry(item)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrParse, i, err)
		}
		s.Entries = append(s.Entries, e)
	}
	return s, nil
}

func parseEntry(item map[string]json.RawMessage) (Entry, error) {
	if item == nil {
		return Entry{}, fmt.Errorf("not an object")
	}

	var e Entry
	if raw, ok := item[FolderKey]; ok && !isNull(raw) {
		folder, err := decodeString(raw)
		if err != nil {
			folder = string(bytes.TrimSpace(raw))
		}
		e.RawFolder = &folder
	}

	fields := []struct {
		key string
		dst **string
	}{
		{FilepathKey, &e.RawFilepath},
		{CardNameKey, &e.RawCardName},
	}
	for _, f := range fields {
		raw, ok := item[f.key]
		if !ok || isNull(raw) {
			continue
		}
		v, err := decodeString(raw)
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %v", f.key, err)
		}
		*f.dst = &v
	}

	return e, nil
}

func decodeString(raw json.RawMessage) (string, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	return v, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
