// Package goldmark converts markdown into unfold rich text using goldmark
// for parsing. Block structure is flattened to lines; inline emphasis,
// code spans and links become emphasis spans.
package goldmark

import "github.com/fwojciec/unfold"

// Parse converts markdown source to rich text. Blocks are separated by a
// single line break so that every row counts toward the collapsed limit.
func Parse(source string) unfold.Text {
	if source == "" {
		return unfold.Text{}
	}
	c := newConverter()
	return c.convert([]byte(source))
}
