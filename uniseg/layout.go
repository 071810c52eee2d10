// Package uniseg lays out plain text in terminal cells and reports the
// result as unfold.LayoutMetrics. Line break opportunities and grapheme
// clusters come from github.com/rivo/uniseg; cell widths from
// github.com/mattn/go-runewidth.
package uniseg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/unfold"
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var (
	_ unfold.LayoutMetrics = (*Layout)(nil)
	_ unfold.Reflower      = (*Layout)(nil)
)

// Line is one laid-out row. Offsets are rune offsets into the source text.
type Line struct {
	Start int
	// End is the offset after the last rune of the row, including trailing
	// whitespace and the line break.
	End int
	// VisibleEnd is the offset after the last non-whitespace rune, or Start
	// for a blank row.
	VisibleEnd int
}

// Options control a layout.
type Options struct {
	// Width is the row width in cells. Zero or less disables wrapping.
	Width int
	// Insets is the number of rows the host draws around the content, such
	// as a title row.
	Insets int
	// EastAsian treats ambiguous-width characters as two cells wide.
	EastAsian bool
}

// Layout is the word-wrapped form of a text.
type Layout struct {
	lines  []Line
	insets int
	opts   Options
}

// New wraps text into rows no wider than opts.Width. Words longer than the
// width are broken between grapheme clusters. A trailing line break does not
// produce an empty final row.
func New(text string, opts Options) *Layout {
	w := wrapper{
		width: opts.Width,
		cond:  &rw.Condition{EastAsianWidth: opts.EastAsian},
	}
	w.wrap(text)
	return &Layout{lines: w.lines, insets: max(opts.Insets, 0), opts: opts}
}

// Lines returns the laid-out rows.
func (l *Layout) Lines() []Line { return l.lines }

// LineCount returns the number of rows.
func (l *Layout) LineCount() int { return len(l.lines) }

// LineVisibleEnd returns the offset after the last visible rune on line.
// Out-of-range lines are clamped.
func (l *Layout) LineVisibleEnd(line int) int {
	if len(l.lines) == 0 {
		return 0
	}
	line = min(max(line, 0), len(l.lines)-1)
	return l.lines[line].VisibleEnd
}

// LineBottom returns the bottom row of line. Each line is one row tall.
func (l *Layout) LineBottom(line int) int {
	return min(max(line, -1), len(l.lines)-1) + 1
}

// BottomPadding is always zero: terminal rows have no descent.
func (l *Layout) BottomPadding() int { return 0 }

// ContentHeight returns the number of rows.
func (l *Layout) ContentHeight() int { return len(l.lines) }

// VerticalInsets returns Options.Insets.
func (l *Layout) VerticalInsets() int { return l.insets }

// Reflow returns the number of rows s occupies under the same options.
func (l *Layout) Reflow(s string) int {
	return New(s, l.opts).LineCount()
}

// ClusterStart returns the last grapheme cluster boundary of s at or before
// rune offset i.
func (l *Layout) ClusterStart(s string, i int) int {
	pos, state := 0, -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := pos + utf8.RuneCountInString(cluster)
		if next > i {
			break
		}
		pos = next
	}
	return pos
}

type wrapper struct {
	width int
	cond  *rw.Condition

	lines     []Line
	start     int // rune offset of the current row
	pos       int // rune offset after the last placed rune
	visible   int // rune offset after the last placed non-space rune
	cells     int // cells used by the current row, trailing spaces included
	hasGlyphs bool
}

func (w *wrapper) wrap(text string) {
	state := -1
	rest := text
	for len(rest) > 0 {
		var segment string
		var mustBreak bool
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		w.place(segment)
		if mustBreak && endsWithBreak(segment) {
			w.breakLine()
		}
	}
	if w.pos > w.start || len(w.lines) == 0 {
		w.breakLine()
	}
}

// place adds a segment: a word followed by its trailing whitespace.
func (w *wrapper) place(segment string) {
	word := strings.TrimRightFunc(segment, unicode.IsSpace)
	tail := segment[len(word):]
	wordCells := w.cond.StringWidth(word)

	if w.width > 0 && w.hasGlyphs && w.cells+wordCells > w.width {
		w.breakLine()
	}
	if w.width > 0 && wordCells > w.width {
		w.placeClusters(word)
	} else if word != "" {
		w.advance(word, wordCells, true)
	}
	// Trailing whitespace hangs past the edge without forcing a break.
	if tail != "" {
		w.advance(tail, w.cond.StringWidth(strings.TrimRight(tail, "\r\n")), false)
	}
}

// placeClusters breaks a word wider than a row between grapheme clusters.
func (w *wrapper) placeClusters(word string) {
	state := -1
	rest := word
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cells := w.cond.StringWidth(cluster)
		if w.hasGlyphs && w.cells+cells > w.width {
			w.breakLine()
		}
		w.advance(cluster, cells, true)
	}
}

func (w *wrapper) advance(s string, cells int, visible bool) {
	w.pos += utf8.RuneCountInString(s)
	w.cells += cells
	if visible {
		w.visible = w.pos
		w.hasGlyphs = true
	}
}

func (w *wrapper) breakLine() {
	visibleEnd := w.visible
	if visibleEnd < w.start {
		visibleEnd = w.start
	}
	w.lines = append(w.lines, Line{Start: w.start, End: w.pos, VisibleEnd: visibleEnd})
	w.start = w.pos
	w.visible = w.pos
	w.cells = 0
	w.hasGlyphs = false
}

func endsWithBreak(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
