package bubbletea

import "time"

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// Focus returns the index of the focused block.
func Focus(m Model) int {
	return m.focus
}

// Gutter exports gutter for testing.
func Gutter(view, marker string) string {
	return gutter(view, marker)
}

// FitRows exports fitRows for testing.
func FitRows(rows []string, n int) []string {
	return fitRows(rows, n)
}

// SetClock replaces the block's clock.
func SetClock(b *ExpandableBlock, now func() time.Time) {
	b.now = now
}

