// Package bubbletea provides a Bubble Tea TUI that displays unfold documents
// as expandable text blocks.
package bubbletea

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / 60

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits. Every block is disposed before Run returns.
func Run(ctx context.Context, m Model) error {
	defer m.lifecycle.TearDown()
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// FrameMsg is one animation frame for the block with the given ID.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// ExpandedMsg reports that a block finished expanding.
type ExpandedMsg struct {
	ID    int
	Title string
}

// CollapsedMsg reports that a block finished collapsing.
type CollapsedMsg struct {
	ID    int
	Title string
}

func frame(id int) tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}
