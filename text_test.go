package unfold_test

import (
	"testing"

	"github.com/fwojciec/unfold"
	"github.com/stretchr/testify/assert"
)

func TestText_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, unfold.Text{}.Len())
	assert.Equal(t, 5, unfold.NewText("hello").Len())
	assert.Equal(t, 7, unfold.NewText("… sieht").Len())
	assert.Equal(t, 2, unfold.NewText("日本").Len())
}

func TestText_Slice(t *testing.T) {
	t.Parallel()

	text := unfold.Text{
		Plain: "héllo wörld",
		Spans: []unfold.Span{
			{Start: 0, End: 5, Emphasis: unfold.Bold},
			{Start: 6, End: 11, Emphasis: unfold.Italic},
		},
	}

	t.Run("clips and shifts spans", func(t *testing.T) {
		t.Parallel()

		got := text.Slice(3, 8)
		assert.Equal(t, "lo wö", got.Plain)
		assert.Equal(t, []unfold.Span{
			{Start: 0, End: 2, Emphasis: unfold.Bold},
			{Start: 3, End: 5, Emphasis: unfold.Italic},
		}, got.Spans)
	})

	t.Run("drops spans outside the range", func(t *testing.T) {
		t.Parallel()

		got := text.Slice(0, 5)
		assert.Equal(t, "héllo", got.Plain)
		assert.Equal(t, []unfold.Span{{Start: 0, End: 5, Emphasis: unfold.Bold}}, got.Spans)
	})

	t.Run("clamps out of range offsets", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, text.Plain, text.Slice(-4, 100).Plain)
		assert.Empty(t, text.Slice(8, 3).Plain)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		t.Parallel()

		_ = text.Slice(1, 2)
		assert.Equal(t, "héllo wörld", text.Plain)
		assert.Len(t, text.Spans, 2)
	})
}

func TestText_Concat(t *testing.T) {
	t.Parallel()

	a := unfold.Text{Plain: "ab", Spans: []unfold.Span{{Start: 0, End: 1, Emphasis: unfold.Code}}}
	b := unfold.Text{Plain: "çd", Spans: []unfold.Span{{Start: 1, End: 2, Emphasis: unfold.Bold}}}

	got := a.Concat(b)
	assert.Equal(t, "abçd", got.Plain)
	assert.Equal(t, []unfold.Span{
		{Start: 0, End: 1, Emphasis: unfold.Code},
		{Start: 3, End: 4, Emphasis: unfold.Bold},
	}, got.Spans)
	assert.Len(t, a.Spans, 1)
}

func TestText_Emphasize(t *testing.T) {
	t.Parallel()

	text := unfold.NewText("hello world")

	got := text.Emphasize(6, 11, unfold.Underline)
	assert.Equal(t, unfold.Underline, got.EmphasisAt(6))
	assert.Equal(t, unfold.Emphasis(0), got.EmphasisAt(5))
	assert.Empty(t, text.Spans)

	assert.True(t, text.Equal(text.Emphasize(3, 3, unfold.Bold)), "empty range")
	assert.True(t, text.Equal(text.Emphasize(0, 5, 0)), "no emphasis")
	assert.Equal(t, []unfold.Span{{Start: 8, End: 11, Emphasis: unfold.Bold}}, text.Emphasize(8, 50, unfold.Bold).Spans)
}

func TestText_EmphasisAt(t *testing.T) {
	t.Parallel()

	text := unfold.Text{
		Plain: "abcdef",
		Spans: []unfold.Span{
			{Start: 0, End: 4, Emphasis: unfold.Bold},
			{Start: 2, End: 6, Emphasis: unfold.Underline},
		},
	}
	assert.Equal(t, unfold.Bold, text.EmphasisAt(1))
	assert.Equal(t, unfold.Bold|unfold.Underline, text.EmphasisAt(3))
	assert.Equal(t, unfold.Underline, text.EmphasisAt(5))
	assert.Equal(t, unfold.Emphasis(0), text.EmphasisAt(6))
}

func TestEmphasis_Has(t *testing.T) {
	t.Parallel()

	e := unfold.Bold | unfold.Underline
	assert.True(t, e.Has(unfold.Bold))
	assert.True(t, e.Has(unfold.Bold|unfold.Underline))
	assert.False(t, e.Has(unfold.Italic))
	assert.False(t, e.Has(unfold.HintEmphasis), "bold underlined text is not the hint")
	assert.True(t, unfold.HintEmphasis.Has(unfold.Bold|unfold.Underline))
}

func TestText_Contains(t *testing.T) {
	t.Parallel()

	assert.True(t, unfold.NewText("read … more").Contains("… more"))
	assert.False(t, unfold.NewText("read more").Contains("…"))
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("merges adjacent runs with the same emphasis", func(t *testing.T) {
		t.Parallel()

		var b unfold.Builder
		b.Append("plain ", 0)
		b.Append("bo", unfold.Bold)
		b.Append("ld", unfold.Bold)
		b.Append(" ", 0)
		b.Append("ïtalic", unfold.Italic)

		got := b.Text()
		assert.Equal(t, "plain bold ïtalic", got.Plain)
		assert.Equal(t, []unfold.Span{
			{Start: 6, End: 10, Emphasis: unfold.Bold},
			{Start: 11, End: 17, Emphasis: unfold.Italic},
		}, got.Spans)
		assert.Equal(t, 17, b.Len())
	})

	t.Run("empty runs are ignored", func(t *testing.T) {
		t.Parallel()

		var b unfold.Builder
		b.Append("", unfold.Bold)
		assert.Equal(t, 0, b.Len())
		assert.True(t, b.Text().Equal(unfold.Text{}))
	})
}

func TestHint(t *testing.T) {
	t.Parallel()

	h := unfold.Hint{Suffix: "see more"}
	assert.Equal(t, "… see more", h.String())
	assert.Equal(t, 10, h.Len())

	custom := unfold.Hint{Prefix: "... ", Suffix: "more"}
	assert.Equal(t, "... more", custom.String())
	assert.Equal(t, 8, custom.Len())

	assert.Equal(t, unfold.DefaultHintPrefix, unfold.Hint{}.String())
}
