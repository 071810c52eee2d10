package bubbletea

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/unfold"
	"github.com/fwojciec/unfold/goldmark"
)

var _ tea.Model = Model{}

const gutterWidth = 2

// Config carries host options that are not part of the document.
type Config struct {
	// EastAsian treats ambiguous-width characters as two cells wide.
	EastAsian bool
	// LoadErrors are shown above the document.
	LoadErrors []error
}

// Model is the Bubble Tea model for the unfold TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	doc    unfold.Document
	config Config
	styles Styles

	blocks    []Block
	focus     int // index of focused expandable block (-1 = none)
	lifecycle *unfold.Lifecycle
	added     int

	status string
	ready  bool
}

// New creates a TUI Model showing every entry of doc.
func New(doc unfold.Document, theme unfold.Theme, config Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type markdown and press Enter to add it..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	m := Model{
		Input:     ti,
		doc:       doc,
		config:    config,
		styles:    NewStyles(theme),
		focus:     -1,
		lifecycle: &unfold.Lifecycle{},
	}
	for _, err := range config.LoadErrors {
		m.blocks = append(m.blocks, NewErrorBlock(err, m.styles))
	}
	for i, entry := range doc.Entries {
		m = m.addBlock(entry.Title, entry.Source, doc.Resolve(i))
	}
	return m.updateFocus()
}

// Lifecycle returns the lifecycle every block is bound to.
func (m Model) Lifecycle() *unfold.Lifecycle { return m.lifecycle }

// Blocks returns the rendered blocks in display order.
func (m Model) Blocks() []Block { return m.blocks }

// Status returns the most recent notification.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		for i, block := range m.blocks {
			if eb, ok := block.(*ExpandableBlock); ok && eb.ID() == msg.ID {
				updated, cmd := block.Update(msg)
				m.blocks[i] = updated
				m.Viewport.SetContent(m.renderContent())
				return m, cmd
			}
		}
		return m, nil

	case ExpandedMsg:
		log.Printf("block %d expanded: %q", msg.ID, msg.Title)
		m.status = "Expanded " + displayTitle(msg.Title)
		m.Viewport.SetContent(m.renderContent())
		return m, nil

	case CollapsedMsg:
		log.Printf("block %d collapsed: %q", msg.ID, msg.Title)
		m.status = "Collapsed " + displayTitle(msg.Title)
		m.Viewport.SetContent(m.renderContent())
		return m, nil
	}

	// Pass remaining messages to sub-components.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	// Output area.
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")

	// Status line.
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	// Input area.
	b.WriteString(m.Input.View())

	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputH - statusHeight - borderHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.lifecycle.TearDown()
		return m, tea.Quit

	case tea.KeyEnter:
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m.toggleFocused()
		}
		m.Input.SetValue("")
		m.added++
		m = m.addBlock(fmt.Sprintf("Note %d", m.added), text, m.doc.Defaults)
		m.focus = len(m.blocks) - 1
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		return m, nil

	case tea.KeyTab:
		m = m.cycleFocus(1)
		m.Viewport.SetContent(m.renderContent())
		return m, nil

	case tea.KeyShiftTab:
		m = m.cycleFocus(-1)
		m.Viewport.SetContent(m.renderContent())
		return m, nil
	}

	// Pass keys to both the input (for typing) and the viewport (for
	// scrolling). Only forward non-character keys to the viewport to avoid
	// conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) toggleFocused() (tea.Model, tea.Cmd) {
	if m.focus < 0 {
		return m, nil
	}
	block, cmd := m.blocks[m.focus].Update(ToggleMsg{})
	m.blocks[m.focus] = block
	m.Viewport.SetContent(m.renderContent())
	return m, cmd
}

// addBlock appends an expandable block for markdown source and binds it to
// the model's lifecycle.
func (m Model) addBlock(title, source string, settings unfold.Settings) Model {
	text := goldmark.Parse(Sanitize(source))
	b := NewExpandableBlock(Sanitize(title), text, m.styles, unfold.WithSettings(settings))
	b.SetEastAsian(m.config.EastAsian)
	m.lifecycle.Bind(b)
	m.blocks = append(m.blocks, b)
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	width := max(m.Viewport.Width-gutterWidth, 1)
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		marker := "  "
		if i == m.focus {
			marker = m.styles.Focus.Render("▌") + " "
		}
		b.WriteString(gutter(block.View(width), marker))
	}
	return b.String()
}

// gutter prefixes the first row of view with marker and indents the rest.
func gutter(view, marker string) string {
	lines := strings.Split(view, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = marker + lines[i]
		} else {
			lines[i] = strings.Repeat(" ", gutterWidth) + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// updateFocus focuses the first expandable block.
func (m Model) updateFocus() Model {
	m.focus = -1
	for i, block := range m.blocks {
		if _, ok := block.(*ExpandableBlock); ok {
			m.focus = i
			return m
		}
	}
	return m
}

// cycleFocus moves focus by step to the next expandable block, wrapping
// around.
func (m Model) cycleFocus(step int) Model {
	n := len(m.blocks)
	if n == 0 {
		return m
	}
	start := m.focus
	if start < 0 {
		start = 0
		if step < 0 {
			start = n - 1
		}
		if _, ok := m.blocks[start].(*ExpandableBlock); ok {
			m.focus = start
			return m
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		if _, ok := m.blocks[idx].(*ExpandableBlock); ok {
			m.focus = idx
			return m
		}
	}
	m.focus = -1
	return m
}

func (m Model) statusLine() string {
	help := m.styles.Muted.Render("Tab to focus, Enter to expand or collapse, Ctrl+C to quit")
	if m.status == "" {
		return help
	}
	return m.styles.Accent.Render(m.status) + "  " + help
}

func displayTitle(title string) string {
	if title == "" {
		return "block"
	}
	return fmt.Sprintf("%q", title)
}
