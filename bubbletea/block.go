package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// Block is a renderable element in the document.
// Unlike tea.Model, View takes a width parameter so the root model
// controls layout and blocks are testable in isolation.
type Block interface {
	Update(tea.Msg) (Block, tea.Cmd)
	View(width int) string
}

// ToggleMsg tells an expandable block to toggle between collapsed and
// expanded. Sent by the root model when the user activates a focused block.
type ToggleMsg struct{}
