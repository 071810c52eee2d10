package unfold

import "time"

// Defaults applied when a setting is missing or out of range.
const (
	DefaultMaxLines = 1
	DefaultDuration = time.Duration(0)
)

// Settings configures an Expandable. Zero values mean "use the default";
// out-of-range values (non-positive MaxLines, negative Duration) also fall
// back to the defaults.
type Settings struct {
	MaxLines   int
	Duration   time.Duration
	HintPrefix string
	HintSuffix string
}

// Merge returns s with every non-zero field of over applied on top.
func (s Settings) Merge(over Settings) Settings {
	if over.MaxLines != 0 {
		s.MaxLines = over.MaxLines
	}
	if over.Duration != 0 {
		s.Duration = over.Duration
	}
	if over.HintPrefix != "" {
		s.HintPrefix = over.HintPrefix
	}
	if over.HintSuffix != "" {
		s.HintSuffix = over.HintSuffix
	}
	return s
}

// Hint returns the hint described by s.
func (s Settings) Hint() Hint {
	return Hint{Prefix: s.HintPrefix, Suffix: s.HintSuffix}.normalize()
}

func normalizeMaxLines(n int) int {
	if n <= 0 {
		return DefaultMaxLines
	}
	return n
}

func normalizeDuration(d time.Duration) time.Duration {
	if d < 0 {
		return DefaultDuration
	}
	return d
}

// Entry is one piece of content with its own settings. Source is markdown.
type Entry struct {
	Title    string
	Source   string
	Settings Settings
}

// Document is a collection of entries sharing default settings.
type Document struct {
	Defaults Settings
	Entries  []Entry
}

// Resolve returns the settings for entry i: the document defaults with the
// entry's own settings merged on top.
func (d Document) Resolve(i int) Settings {
	if i < 0 || i >= len(d.Entries) {
		return d.Defaults
	}
	return d.Defaults.Merge(d.Entries[i].Settings)
}
