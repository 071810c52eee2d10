package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/unfold"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Text   lipgloss.Style
	Title  lipgloss.Style
	Hint   lipgloss.Style
	Focus  lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
	Code   lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t unfold.Theme) Styles {
	return Styles{
		Text:   lipgloss.NewStyle().Foreground(ansiColor(t.Text)),
		Title:  lipgloss.NewStyle().Foreground(ansiColor(t.Title)).Bold(true),
		Hint:   lipgloss.NewStyle().Foreground(ansiColor(t.Hint)),
		Focus:  lipgloss.NewStyle().Foreground(ansiColor(t.Focus)).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Code:   lipgloss.NewStyle().Background(ansiColor(t.CodeBg)),
		Accent: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

// Emphasis returns the style for a run of text with emphasis e. Marked text,
// such as the expand hint, also takes the hint color.
func (s Styles) Emphasis(e unfold.Emphasis) lipgloss.Style {
	style := s.Text
	if e.Has(unfold.Marker) {
		style = style.Foreground(s.Hint.GetForeground())
	}
	if e.Has(unfold.Bold) {
		style = style.Bold(true)
	}
	if e.Has(unfold.Italic) {
		style = style.Italic(true)
	}
	if e.Has(unfold.Underline) {
		style = style.Underline(true)
	}
	if e.Has(unfold.Code) {
		style = style.Background(s.Code.GetBackground())
	}
	return style
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
