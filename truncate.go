package unfold

import "fmt"

// Range is a half-open interval of rune offsets.
type Range struct {
	Start int
	End   int
}

// Len returns the number of runes in r.
func (r Range) Len() int { return r.End - r.Start }

// Rendering is collapsed text ready for display. Highlight covers the hint
// suffix, which carries HintEmphasis.
type Rendering struct {
	Text      Text
	Highlight Range
}

// CollapsedRendering derives the collapsed form of full. The hint overwrites
// the tail of line maxLines-1 instead of being appended after it, so the
// result still fits in maxLines lines. m must describe the layout of full.
// When m also implements Reflower the hint starts on a cluster boundary and
// is moved back until the rendering fits in maxLines lines.
//
// It returns an error wrapping ErrTruncationUnavailable when the text does
// not overflow maxLines or the metrics do not agree with the text.
func CollapsedRendering(full Text, maxLines int, m LayoutMetrics, hint Hint) (Rendering, error) {
	if maxLines < 1 {
		return Rendering{}, fmt.Errorf("%w: max lines %d", ErrTruncationUnavailable, maxLines)
	}
	if m == nil {
		return Rendering{}, fmt.Errorf("%w: no layout metrics", ErrTruncationUnavailable)
	}
	if n := m.LineCount(); n <= maxLines {
		return Rendering{}, fmt.Errorf("%w: %d lines fit in %d", ErrTruncationUnavailable, n, maxLines)
	}

	hint = hint.normalize()
	visibleEnd := m.LineVisibleEnd(maxLines - 1)
	if visibleEnd > full.Len() {
		return Rendering{}, fmt.Errorf("%w: visible end %d beyond text length %d", ErrTruncationUnavailable, visibleEnd, full.Len())
	}
	hintStart := visibleEnd - hint.Len()
	if hintStart < 0 {
		return Rendering{}, fmt.Errorf("%w: hint longer than visible text", ErrTruncationUnavailable)
	}

	// The hint replaces as many runes as it has, which is not always as
	// many cells. Metrics that can reflow move it back one cluster at a
	// time until the rendering fits.
	fit, _ := m.(Reflower)
	for {
		if fit != nil {
			hintStart = fit.ClusterStart(full.Plain, hintStart)
		}
		r, err := overwrite(full, hintStart, hint)
		if err != nil {
			return Rendering{}, err
		}
		if fit == nil || fit.Reflow(r.Text.Plain) <= maxLines {
			return r, nil
		}
		if hintStart == 0 {
			return Rendering{}, fmt.Errorf("%w: hint does not fit in %d lines", ErrTruncationUnavailable, maxLines)
		}
		hintStart--
	}
}

// overwrite replaces everything from hintStart on with hint.
func overwrite(full Text, hintStart int, hint Hint) (Rendering, error) {
	prefix := NewText(hint.Prefix)
	text := full.Slice(0, hintStart).Concat(prefix).Concat(NewText(hint.Suffix))
	highlight := Range{Start: hintStart + prefix.Len(), End: text.Len()}
	if highlight.End > text.Len() || highlight.Start > highlight.End {
		return Rendering{}, fmt.Errorf("%w: highlight %v outside text", ErrTruncationUnavailable, highlight)
	}
	text = text.Emphasize(highlight.Start, highlight.End, HintEmphasis)
	return Rendering{Text: text, Highlight: highlight}, nil
}
