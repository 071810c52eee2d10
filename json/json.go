// Package json persists unfold documents in a versioned JSON envelope.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/unfold"
)

// envelope is the v1 wire format for a persisted document.
type envelope struct {
	Version  int         `json:"version"`
	Defaults settingsDTO `json:"defaults"`
	Entries  []entryDTO  `json:"entries"`
}

// settingsDTO is the JSON representation of unfold.Settings. Durations are
// stored in milliseconds. Out-of-range values are kept as written; the
// widget falls back to its defaults for them.
type settingsDTO struct {
	MaxLines   int    `json:"max_lines,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
	HintPrefix string `json:"hint_prefix,omitempty"`
	HintSuffix string `json:"hint_suffix,omitempty"`
}

type entryDTO struct {
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown"`
	settingsDTO
}

// MarshalDocument serializes a Document to JSON in v1 envelope format.
func MarshalDocument(d unfold.Document) ([]byte, error) {
	env := envelope{
		Version:  1,
		Defaults: marshalSettings(d.Defaults),
		Entries:  make([]entryDTO, len(d.Entries)),
	}
	for i, e := range d.Entries {
		env.Entries[i] = entryDTO{
			Title:       e.Title,
			Markdown:    e.Source,
			settingsDTO: marshalSettings(e.Settings),
		}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalDocument deserializes a Document from JSON in v1 envelope format.
func UnmarshalDocument(data []byte) (unfold.Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return unfold.Document{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return unfold.Document{}, fmt.Errorf("%w: unsupported envelope version: %d", unfold.ErrValidation, env.Version)
	}
	doc := unfold.Document{
		Defaults: unmarshalSettings(env.Defaults),
		Entries:  make([]unfold.Entry, len(env.Entries)),
	}
	for i, e := range env.Entries {
		doc.Entries[i] = unfold.Entry{
			Title:    e.Title,
			Source:   e.Markdown,
			Settings: unmarshalSettings(e.settingsDTO),
		}
	}
	return doc, nil
}

// Save writes a Document to a JSON file, creating parent directories as needed.
func Save(path string, d unfold.Document) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Document from a JSON file.
func Load(path string) (unfold.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return unfold.Document{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDocument(data)
}

func marshalSettings(s unfold.Settings) settingsDTO {
	return settingsDTO{
		MaxLines:   s.MaxLines,
		DurationMs: s.Duration.Milliseconds(),
		HintPrefix: s.HintPrefix,
		HintSuffix: s.HintSuffix,
	}
}

func unmarshalSettings(dto settingsDTO) unfold.Settings {
	return unfold.Settings{
		MaxLines:   dto.MaxLines,
		Duration:   time.Duration(dto.DurationMs) * time.Millisecond,
		HintPrefix: dto.HintPrefix,
		HintSuffix: dto.HintSuffix,
	}
}
