package bubbletea_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/unfold"
	bt "github.com/fwojciec/unfold/bubbletea"
	"github.com/stretchr/testify/require"
)

// longText wraps to several rows at 80 columns.
var longText = strings.TrimSpace(strings.Repeat("lorem ipsum dolor ", 12))

// testDoc has two long entries sharing a hint label.
func testDoc() unfold.Document {
	return unfold.Document{
		Defaults: unfold.Settings{MaxLines: 1, HintSuffix: "more"},
		Entries: []unfold.Entry{
			{Title: "First", Source: longText},
			{Title: "Second", Source: "*" + longText + "*", Settings: unfold.Settings{MaxLines: 2}},
		},
	}
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, doc unfold.Document) bt.Model {
	t.Helper()
	return initModelWithSize(t, doc, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, doc unfold.Document, width, height int) bt.Model {
	t.Helper()
	m := bt.New(doc, unfold.DefaultTheme(), bt.Config{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModelCmd sends a message and returns the updated Model and command.
func updateModelCmd(t *testing.T, m bt.Model, msg tea.Msg) (bt.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

func expandable(t *testing.T, m bt.Model, i int) *bt.ExpandableBlock {
	t.Helper()
	blocks := m.Blocks()
	require.Greater(t, len(blocks), i)
	b, ok := blocks[i].(*bt.ExpandableBlock)
	require.True(t, ok, "block %d is %T", i, blocks[i])
	return b
}
