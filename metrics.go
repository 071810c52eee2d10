package unfold

// LayoutMetrics describes how a host laid out the canonical text at its
// current width. Offsets are rune offsets into the canonical text; vertical
// values are in host units (rows for a terminal).
type LayoutMetrics interface {
	// LineCount returns the number of laid-out lines.
	LineCount() int
	// LineVisibleEnd returns the offset after the last visible character
	// on line. Trailing whitespace and line breaks are not visible.
	LineVisibleEnd(line int) int
	// LineBottom returns the bottom of line relative to the content top.
	LineBottom(line int) int
	// BottomPadding returns extra space the layout keeps below its last line.
	BottomPadding() int
	// ContentHeight returns the natural height of all lines.
	ContentHeight() int
	// VerticalInsets returns host padding and chrome above and below the
	// content.
	VerticalInsets() int
}

// Reflower is implemented by LayoutMetrics that can lay out other text under
// the same constraints. CollapsedRendering uses it to keep the hint within
// maxLines when characters differ in display width.
type Reflower interface {
	// Reflow returns the number of lines s occupies.
	Reflow(s string) int
	// ClusterStart returns the last character cluster boundary of s at or
	// before rune offset i.
	ClusterStart(s string, i int) int
}

// collapsedHeight is the height of the widget showing only the first
// maxLines lines.
func collapsedHeight(m LayoutMetrics, maxLines int) int {
	last := min(maxLines, m.LineCount()) - 1
	if last < 0 {
		return m.VerticalInsets()
	}
	return m.LineBottom(last) + m.BottomPadding() + m.VerticalInsets()
}

// expandedHeight is the natural height of the widget showing every line.
func expandedHeight(m LayoutMetrics) int {
	return m.ContentHeight() + m.VerticalInsets()
}
