package unfold

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Emphasis is a set of visual emphasis flags applied to a run of text.
type Emphasis uint8

const (
	Bold Emphasis = 1 << iota
	Italic
	Underline
	Code
	// Marker tags text the widget inserted itself, such as the expand hint.
	Marker
)

// Has reports whether all flags in f are set.
func (e Emphasis) Has(f Emphasis) bool { return e&f == f }

// Span applies Emphasis to the runes in [Start, End).
type Span struct {
	Start    int
	End      int
	Emphasis Emphasis
}

// Text is rich text: plain characters plus emphasis spans. Offsets are rune
// offsets into Plain. Text values are never mutated in place; every
// operation returns a new Text.
type Text struct {
	Plain string
	Spans []Span
}

// NewText returns unstyled text.
func NewText(s string) Text {
	return Text{Plain: s}
}

func (t Text) String() string { return t.Plain }

// Len returns the number of characters (runes) in t.
func (t Text) Len() int { return utf8.RuneCountInString(t.Plain) }

// Contains reports whether the plain text contains s.
func (t Text) Contains(s string) bool { return strings.Contains(t.Plain, s) }

// Slice returns the characters in [start, end). Offsets are clamped to the
// text bounds. Spans are clipped to the range and shifted to start at zero.
func (t Text) Slice(start, end int) Text {
	runes := []rune(t.Plain)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	out := Text{Plain: string(runes[start:end])}
	for _, sp := range t.Spans {
		s := max(sp.Start, start)
		e := min(sp.End, end)
		if s >= e {
			continue
		}
		out.Spans = append(out.Spans, Span{Start: s - start, End: e - start, Emphasis: sp.Emphasis})
	}
	return out
}

// Concat returns t followed by o.
func (t Text) Concat(o Text) Text {
	offset := t.Len()
	out := Text{
		Plain: t.Plain + o.Plain,
		Spans: slices.Clone(t.Spans),
	}
	for _, sp := range o.Spans {
		out.Spans = append(out.Spans, Span{Start: sp.Start + offset, End: sp.End + offset, Emphasis: sp.Emphasis})
	}
	return out
}

// Emphasize returns a copy of t with e applied to [start, end). An empty or
// out-of-range interval returns t unchanged.
func (t Text) Emphasize(start, end int, e Emphasis) Text {
	n := t.Len()
	start = clamp(start, 0, n)
	end = clamp(end, start, n)
	if start == end || e == 0 {
		return t
	}
	out := Text{Plain: t.Plain, Spans: slices.Clone(t.Spans)}
	out.Spans = append(out.Spans, Span{Start: start, End: end, Emphasis: e})
	return out
}

// EmphasisAt returns the union of emphasis flags covering the rune at i.
func (t Text) EmphasisAt(i int) Emphasis {
	var e Emphasis
	for _, sp := range t.Spans {
		if i >= sp.Start && i < sp.End {
			e |= sp.Emphasis
		}
	}
	return e
}

// Equal reports whether t and o have the same characters and spans.
func (t Text) Equal(o Text) bool {
	return t.Plain == o.Plain && slices.Equal(t.Spans, o.Spans)
}

// Builder accumulates runs of text with emphasis. Adjacent runs with the
// same emphasis share one span. The zero value is ready to use.
type Builder struct {
	sb    strings.Builder
	n     int
	spans []Span
}

// Append adds s with emphasis e.
func (b *Builder) Append(s string, e Emphasis) {
	if s == "" {
		return
	}
	count := utf8.RuneCountInString(s)
	b.sb.WriteString(s)
	if e != 0 {
		if last := len(b.spans) - 1; last >= 0 && b.spans[last].End == b.n && b.spans[last].Emphasis == e {
			b.spans[last].End += count
		} else {
			b.spans = append(b.spans, Span{Start: b.n, End: b.n + count, Emphasis: e})
		}
	}
	b.n += count
}

// Len returns the number of runes written so far.
func (b *Builder) Len() int { return b.n }

// Text returns the accumulated text.
func (b *Builder) Text() Text {
	return Text{Plain: b.sb.String(), Spans: slices.Clone(b.spans)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
