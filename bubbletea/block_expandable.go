package bubbletea

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/unfold"
	"github.com/fwojciec/unfold/uniseg"
)

var (
	_ Block           = (*ExpandableBlock)(nil)
	_ unfold.Disposer = (*ExpandableBlock)(nil)
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ExpandableBlock hosts an unfold.Expandable in the terminal. It lays out
// the canonical text to report layout metrics, renders the widget's text
// under its line cap and explicit height, and drives height transitions
// with frame ticks.
type ExpandableBlock struct {
	id        int
	title     string
	widget    *unfold.Expandable
	styles    Styles
	cache     *uniseg.Cache
	eastAsian bool

	width   int
	now     func() time.Time
	started time.Time
	pending []tea.Msg
}

// NewExpandableBlock creates a block showing text. The title, when set, is
// drawn on its own row above the text.
func NewExpandableBlock(title string, text unfold.Text, styles Styles, opts ...unfold.Option) *ExpandableBlock {
	b := &ExpandableBlock{
		id:     nextID(),
		title:  title,
		widget: unfold.New(opts...),
		styles: styles,
		cache:  uniseg.NewCache(),
		now:    time.Now,
	}
	b.widget.OnExpanded(func() {
		b.pending = append(b.pending, ExpandedMsg{ID: b.id, Title: b.title})
	})
	b.widget.OnCollapsed(func() {
		b.pending = append(b.pending, CollapsedMsg{ID: b.id, Title: b.title})
	})
	b.SetText(text)
	return b
}

// ID returns the block's unique ID.
func (b *ExpandableBlock) ID() int { return b.id }

// Title returns the block's title.
func (b *ExpandableBlock) Title() string { return b.title }

// Widget returns the state machine behind the block.
func (b *ExpandableBlock) Widget() *unfold.Expandable { return b.widget }

// SetEastAsian selects East Asian widths for ambiguous characters.
func (b *ExpandableBlock) SetEastAsian(on bool) {
	if b.eastAsian != on {
		b.eastAsian = on
		b.width = 0
	}
}

// SetText replaces the block's text. Tabs are shown as single spaces.
func (b *ExpandableBlock) SetText(text unfold.Text) {
	text.Plain = strings.ReplaceAll(text.Plain, "\t", " ")
	b.widget.SetFullText(text)
}

// Dispose releases the widget. Pending notifications are dropped.
func (b *ExpandableBlock) Dispose() {
	b.widget.Dispose()
	b.pending = nil
}

func (b *ExpandableBlock) Update(msg tea.Msg) (Block, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case ToggleMsg:
		if b.widget.Activate() {
			b.started = b.now()
			if b.widget.Animating() {
				cmds = append(cmds, frame(b.id))
			}
		}
	case FrameMsg:
		if msg.ID != b.id || !b.widget.Animating() {
			return b, nil
		}
		b.widget.Tick(b.progress(msg.Time))
		if b.widget.Animating() {
			cmds = append(cmds, frame(b.id))
		}
	}
	return b, b.flush(cmds)
}

func (b *ExpandableBlock) View(width int) string {
	opts := b.layoutOptions(width)
	b.measure(width, opts)

	text := b.widget.Text()
	lines := b.cache.Layout(text.Plain, opts).Lines()
	if limit := b.widget.MaxLines(); limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	rows := renderRows(text, lines, b.styles)
	if h, explicit := b.widget.Height(); explicit {
		rows = fitRows(rows, h-opts.Insets)
	}
	if b.title != "" {
		rows = append([]string{b.header()}, rows...)
	}
	return strings.Join(rows, "\n")
}

// measure reports metrics for the canonical text after a resize or a text
// or settings change. Measuring waits while a transition runs.
func (b *ExpandableBlock) measure(width int, opts uniseg.Options) {
	if b.widget.Animating() {
		return
	}
	if width == b.width && !b.widget.NeedsMeasure() {
		return
	}
	b.width = width
	b.widget.Remeasured(b.cache.Layout(b.widget.CanonicalText().Plain, opts))
}

func (b *ExpandableBlock) layoutOptions(width int) uniseg.Options {
	insets := 0
	if b.title != "" {
		insets = 1
	}
	return uniseg.Options{Width: width, Insets: insets, EastAsian: b.eastAsian}
}

func (b *ExpandableBlock) header() string {
	indicator := "•"
	switch b.widget.State() {
	case unfold.StateCollapsed, unfold.StateAnimatingCollapse:
		if b.widget.Activatable() {
			indicator = "▶"
		}
	case unfold.StateExpanded, unfold.StateAnimatingExpand:
		if b.widget.Activatable() {
			indicator = "▼"
		}
	}
	return b.styles.Title.Render(indicator + " " + b.title)
}

// progress converts a frame time into the elapsed fraction of the
// transition.
func (b *ExpandableBlock) progress(at time.Time) float64 {
	d := b.widget.Duration()
	if d <= 0 {
		return 1
	}
	return float64(at.Sub(b.started)) / float64(d)
}

// flush turns notifications raised by the widget into commands.
func (b *ExpandableBlock) flush(cmds []tea.Cmd) tea.Cmd {
	for _, msg := range b.pending {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	b.pending = nil
	return tea.Batch(cmds...)
}

// renderRows styles each laid-out line of text.
func renderRows(text unfold.Text, lines []uniseg.Line, styles Styles) []string {
	runes := []rune(text.Plain)
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		var sb strings.Builder
		for i := line.Start; i < line.VisibleEnd; {
			e := text.EmphasisAt(i)
			j := i + 1
			for j < line.VisibleEnd && text.EmphasisAt(j) == e {
				j++
			}
			run := string(runes[i:j])
			if e == 0 {
				sb.WriteString(styles.Text.Render(run))
			} else {
				sb.WriteString(styles.Emphasis(e).Render(run))
			}
			i = j
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// fitRows clips or pads rows to exactly n rows.
func fitRows(rows []string, n int) []string {
	n = max(n, 0)
	if len(rows) >= n {
		return rows[:n]
	}
	for len(rows) < n {
		rows = append(rows, "")
	}
	return rows
}
