package bubbletea_test

import (
	"strings"
	"testing"

	bt "github.com/fwojciec/unfold/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("passes plain text through unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello **world**", bt.Sanitize("hello **world**"))
	})

	t.Run("strips ANSI color codes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello", bt.Sanitize("\x1b[31mhello\x1b[0m"))
	})

	t.Run("strips OSC sequences", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "text", bt.Sanitize("\x1b]0;title\x07text"))
	})

	t.Run("preserves tabs and newlines", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\tb\nc", bt.Sanitize("a\tb\nc"))
	})

	t.Run("removes control characters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "abcd", bt.Sanitize("a\x01b\x02c\x07d\x7f"))
	})

	t.Run("normalizes line endings", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\nb\nc\n", bt.Sanitize("a\r\nb\rc\r\n"))
	})

	t.Run("handles empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", bt.Sanitize(""))
	})

	t.Run("handles large input", func(t *testing.T) {
		t.Parallel()
		line := "\x1b[32m" + strings.Repeat("x", 1000) + "\x1b[0m\n"
		result := bt.Sanitize(strings.Repeat(line, 1000))
		assert.NotContains(t, result, "\x1b")
		assert.Contains(t, result, strings.Repeat("x", 1000))
	})
}
