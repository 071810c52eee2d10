package main

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/unfold"
	unfoldjson "github.com/fwojciec/unfold/json"
)

// loadDocument builds the document to show. Entries come from the document
// file, then from the markdown files matching pattern under root. Without
// either source the sample document is shown. Files that cannot be read are
// reported in the returned slice instead of failing the whole load.
func loadDocument(docPath, root, pattern string) (unfold.Document, []error, error) {
	if docPath == "" && pattern == "" {
		return sampleDocument(), nil, nil
	}

	var doc unfold.Document
	if docPath != "" {
		d, err := unfoldjson.Load(docPath)
		if err != nil {
			return unfold.Document{}, nil, fmt.Errorf("load document: %w", err)
		}
		doc = d
	}
	if pattern == "" {
		return doc, nil, nil
	}

	paths, err := discover(root, pattern)
	if err != nil {
		return unfold.Document{}, nil, err
	}
	entries, errs := readEntries(root, paths)
	doc.Entries = append(doc.Entries, entries...)
	return doc, errs, nil
}

// discover returns the files under root matching pattern, sorted, as
// slash-separated paths relative to root.
func discover(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: invalid glob pattern: %s", unfold.ErrValidation, pattern)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root must be a directory: %s", unfold.ErrValidation, root)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match pattern: %w", err)
	}
	slices.Sort(matches)
	return matches, nil
}

// readEntries reads each file as one entry titled by its path.
func readEntries(root string, paths []string) ([]unfold.Entry, []error) {
	var entries []unfold.Entry
	var errs []error
	for _, p := range paths {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", p, err))
			continue
		}
		entries = append(entries, unfold.Entry{Title: p, Source: string(data)})
	}
	return entries, errs
}

// applyOverrides applies the settings flags named in set to the defaults and
// to every entry, so they win over per-entry settings. Only flags the user
// passed are applied; an explicit zero duration forces instant transitions.
func applyOverrides(doc unfold.Document, set map[string]bool, s unfold.Settings) unfold.Document {
	apply := func(dst unfold.Settings) unfold.Settings {
		if set["max-lines"] {
			dst.MaxLines = s.MaxLines
		}
		if set["duration"] {
			dst.Duration = s.Duration
		}
		if set["hint"] {
			dst.HintSuffix = s.HintSuffix
		}
		return dst
	}
	doc.Defaults = apply(doc.Defaults)
	entries := make([]unfold.Entry, len(doc.Entries))
	for i, e := range doc.Entries {
		e.Settings = apply(e.Settings)
		entries[i] = e
	}
	doc.Entries = entries
	return doc
}

// sampleDocument is shown when no content is given and written by -init.
func sampleDocument() unfold.Document {
	return unfold.Document{
		Defaults: unfold.Settings{
			MaxLines:   2,
			Duration:   250 * time.Millisecond,
			HintSuffix: "more",
		},
		Entries: []unfold.Entry{
			{
				Title: "Welcome",
				Source: "Each block shows its first lines and ends with a **more** hint when " +
					"the text does not fit. Press *Enter* to expand the focused block and " +
					"again to collapse it. Press *Tab* to move between blocks. Type " +
					"markdown into the input line and press *Enter* to add a block.",
			},
			{
				Title:  "Short text",
				Source: "Text that fits is shown in full and cannot be expanded.",
			},
			{
				Title: "Release notes",
				Source: "## v0.2\n\n" +
					"- Collapsed text is re-derived from the full text after every resize.\n" +
					"- The hint replaces the end of the last visible line instead of adding a line.\n" +
					"- `-east-asian` treats ambiguous-width characters as wide.\n" +
					"- Documents can set defaults and per-entry overrides.",
				Settings: unfold.Settings{MaxLines: 3, HintSuffix: "all notes"},
			},
		},
	}
}
