package unfold

import "unicode/utf8"

// DefaultHintPrefix is inserted before the hint suffix when no prefix is set.
const DefaultHintPrefix = "… "

// Hint is the marker that replaces the tail of collapsed text. The prefix
// is rendered plain; the suffix carries the hint emphasis.
type Hint struct {
	Prefix string
	Suffix string
}

// String returns the literal hint inserted into collapsed text.
func (h Hint) String() string {
	h = h.normalize()
	return h.Prefix + h.Suffix
}

// Len returns the hint length in characters.
func (h Hint) Len() int { return utf8.RuneCountInString(h.String()) }

func (h Hint) normalize() Hint {
	if h.Prefix == "" {
		h.Prefix = DefaultHintPrefix
	}
	return h
}

// HintEmphasis is applied to the hint suffix.
const HintEmphasis = Bold | Underline | Marker
