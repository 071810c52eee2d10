// Package mock provides test doubles for unfold interfaces using function fields.
package mock

import "github.com/fwojciec/unfold"

// Interface compliance checks.
var (
	_ unfold.LayoutMetrics = (*Metrics)(nil)
	_ unfold.Disposer      = (*Disposer)(nil)
)

// Metrics is a test double for unfold.LayoutMetrics.
// LineCountFn and LineVisibleEndFn panic when nil to catch missing setup.
// The vertical methods are nil-safe: LineBottom defaults to line+1 (one
// unit per line), ContentHeight to LineCount, padding and insets to zero.
type Metrics struct {
	LineCountFn      func() int
	LineVisibleEndFn func(line int) int
	LineBottomFn     func(line int) int
	BottomPaddingFn  func() int
	ContentHeightFn  func() int
	VerticalInsetsFn func() int
}

// LineCount delegates to LineCountFn.
func (m *Metrics) LineCount() int {
	return m.LineCountFn()
}

// LineVisibleEnd delegates to LineVisibleEndFn.
func (m *Metrics) LineVisibleEnd(line int) int {
	return m.LineVisibleEndFn(line)
}

// LineBottom delegates to LineBottomFn. Returns line+1 when LineBottomFn is nil.
func (m *Metrics) LineBottom(line int) int {
	if m.LineBottomFn == nil {
		return line + 1
	}
	return m.LineBottomFn(line)
}

// BottomPadding delegates to BottomPaddingFn. Returns 0 when BottomPaddingFn is nil.
func (m *Metrics) BottomPadding() int {
	if m.BottomPaddingFn == nil {
		return 0
	}
	return m.BottomPaddingFn()
}

// ContentHeight delegates to ContentHeightFn. Returns LineCount when
// ContentHeightFn is nil.
func (m *Metrics) ContentHeight() int {
	if m.ContentHeightFn == nil {
		return m.LineCount()
	}
	return m.ContentHeightFn()
}

// VerticalInsets delegates to VerticalInsetsFn. Returns 0 when VerticalInsetsFn is nil.
func (m *Metrics) VerticalInsets() int {
	if m.VerticalInsetsFn == nil {
		return 0
	}
	return m.VerticalInsetsFn()
}

// Disposer is a test double for unfold.Disposer.
type Disposer struct {
	DisposeFn func()
}

// Dispose delegates to DisposeFn. No-op when DisposeFn is nil.
func (d *Disposer) Dispose() {
	if d.DisposeFn != nil {
		d.DisposeFn()
	}
}

// Lines returns Metrics for a layout whose lines end at the given visible
// offsets, one height unit per line.
func Lines(visibleEnds ...int) *Metrics {
	return &Metrics{
		LineCountFn: func() int { return len(visibleEnds) },
		LineVisibleEndFn: func(line int) int {
			return visibleEnds[line]
		},
	}
}
