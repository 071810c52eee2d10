package unfold_test

import (
	"testing"

	"github.com/fwojciec/unfold"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := unfold.DefaultTheme()

	assert.Equal(t, -1, theme.Text)
	assert.Equal(t, 4, theme.Title)
	assert.Equal(t, 6, theme.Hint)
	assert.Equal(t, 5, theme.Focus)
	assert.Equal(t, 1, theme.Error)
	assert.Equal(t, 8, theme.Muted)
	assert.Equal(t, 0, theme.CodeBg)
	assert.Equal(t, 2, theme.Accent)
}
