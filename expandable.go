package unfold

import "time"

// Origin tells SetText where a text came from.
type Origin int

const (
	// OriginCaller marks text supplied by the widget's user. It replaces
	// the canonical text.
	OriginCaller Origin = iota
	// OriginInternal marks text derived by the widget itself, such as a
	// collapsed rendering. It never replaces the canonical text.
	OriginInternal
)

// Option configures an Expandable.
type Option func(*Expandable)

// WithMaxLines sets the number of lines shown while collapsed. Values below
// one fall back to DefaultMaxLines.
func WithMaxLines(n int) Option {
	return func(e *Expandable) {
		e.maxLines = normalizeMaxLines(n)
	}
}

// WithDuration sets the length of the height transition. Negative values
// fall back to DefaultDuration.
func WithDuration(d time.Duration) Option {
	return func(e *Expandable) {
		e.duration = normalizeDuration(d)
	}
}

// WithHint sets the hint that replaces the tail of collapsed text.
func WithHint(h Hint) Option {
	return func(e *Expandable) {
		e.hint = h.normalize()
	}
}

// WithHintSuffix sets the emphasised label that follows the hint prefix.
func WithHintSuffix(label string) Option {
	return func(e *Expandable) {
		e.hint.Suffix = label
	}
}

// WithEasing sets the easing curve of the height transition. Nil selects
// AccelerateDecelerate.
func WithEasing(fn Easing) Option {
	return func(e *Expandable) {
		if fn == nil {
			fn = AccelerateDecelerate
		}
		e.easing = fn
	}
}

// WithSettings applies every field of s, falling back to defaults for
// missing or out-of-range values.
func WithSettings(s Settings) Option {
	return func(e *Expandable) {
		e.maxLines = normalizeMaxLines(s.MaxLines)
		e.duration = normalizeDuration(s.Duration)
		e.hint = s.Hint()
	}
}

// Expandable is the collapse/expand state machine behind an expandable text
// widget. It owns the canonical text, derives the rendered text from it and
// the host's layout metrics, and runs the height transition between the
// collapsed and expanded forms.
//
// An Expandable is not safe for concurrent use. All calls are expected on
// the host's UI thread.
type Expandable struct {
	canonical Text
	rendered  Text

	maxLines int
	duration time.Duration
	hint     Hint
	easing   Easing

	state       State
	metrics     LayoutMetrics
	activatable bool
	dirty       bool
	// settle is set until the first measurement of a new canonical text.
	settle bool

	session        Session
	height         int
	explicitHeight bool

	onCollapsed func()
	onExpanded  func()
	onHeight    func(int)
	disposed    bool
}

// New creates an Expandable with no text. It starts collapsed and settles
// into its initial state on the first measurement.
func New(opts ...Option) *Expandable {
	e := &Expandable{
		maxLines: DefaultMaxLines,
		duration: DefaultDuration,
		hint:     Hint{}.normalize(),
		easing:   AccelerateDecelerate,
		state:    StateCollapsed,
		dirty:    true,
		settle:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session.OnStart = e.sessionStarted
	e.session.OnFrame = e.frame
	e.session.OnEnd = e.sessionEnded
	return e
}

// SetFullText replaces the canonical text. It is shorthand for
// SetText(t, OriginCaller).
func (e *Expandable) SetFullText(t Text) {
	e.SetText(t, OriginCaller)
}

// SetText is the single write path for the rendered text. Caller text
// becomes the new canonical text and requests a measurement; internal text
// only changes what is displayed.
func (e *Expandable) SetText(t Text, origin Origin) {
	if e.disposed {
		return
	}
	if origin == OriginCaller {
		e.canonical = t
		e.dirty = true
		e.settle = true
	}
	e.rendered = t
}

// Remeasured is called by the host after every layout pass with metrics for
// the canonical text. It is ignored while a transition runs.
func (e *Expandable) Remeasured(m LayoutMetrics) {
	if e.disposed || m == nil || e.session.Running() {
		return
	}
	e.metrics = m
	e.dirty = false

	overflowing := m.LineCount() > e.maxLines
	if e.settle {
		e.settle = false
		if !e.activatable {
			e.state = StateExpanded
			if overflowing {
				e.state = StateCollapsed
			}
		}
	}

	if !overflowing {
		e.activatable = false
		e.write(e.canonical)
		return
	}
	e.activatable = true
	if e.state == StateCollapsed {
		e.applyTruncation()
	}
}

// Activate toggles between collapsed and expanded, starting a height
// transition. It reports whether a transition started; it is a no-op while
// a transition runs or when there is nothing to expand.
func (e *Expandable) Activate() bool {
	if e.disposed || !e.activatable || e.metrics == nil || e.session.Running() {
		return false
	}
	from, _ := e.Height()
	var to int
	switch e.state {
	case StateCollapsed:
		e.state = StateAnimatingExpand
		to = expandedHeight(e.metrics)
	case StateExpanded:
		e.state = StateAnimatingCollapse
		to = collapsedHeight(e.metrics, e.maxLines)
	default:
		return false
	}
	return e.session.Start(from, to, e.duration, e.easing)
}

// Tick advances a running transition to fraction of its duration.
func (e *Expandable) Tick(fraction float64) {
	if e.disposed {
		return
	}
	e.session.Tick(fraction)
}

// Reconfigure applies opts. Invalid values fall back to defaults. The next
// layout pass re-derives the rendered text.
func (e *Expandable) Reconfigure(opts ...Option) {
	if e.disposed {
		return
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dirty = true
}

// SetCollapsedMaxLines is shorthand for Reconfigure(WithMaxLines(n)).
func (e *Expandable) SetCollapsedMaxLines(n int) { e.Reconfigure(WithMaxLines(n)) }

// SetAnimationDuration is shorthand for Reconfigure(WithDuration(d)).
func (e *Expandable) SetAnimationDuration(d time.Duration) { e.Reconfigure(WithDuration(d)) }

// SetExpandHintSuffix is shorthand for Reconfigure(WithHintSuffix(label)).
func (e *Expandable) SetExpandHintSuffix(label string) { e.Reconfigure(WithHintSuffix(label)) }

// OnCollapsed registers fn to run each time a collapse completes.
func (e *Expandable) OnCollapsed(fn func()) {
	if !e.disposed {
		e.onCollapsed = fn
	}
}

// OnExpanded registers fn to run each time an expansion completes.
func (e *Expandable) OnExpanded(fn func()) {
	if !e.disposed {
		e.onExpanded = fn
	}
}

// OnHeight registers fn to receive every height a transition produces.
func (e *Expandable) OnHeight(fn func(int)) {
	if !e.disposed {
		e.onHeight = fn
	}
}

// Dispose cancels a running transition without completing it, drops the
// registered callbacks and turns every later call into a no-op.
func (e *Expandable) Dispose() {
	if e.disposed {
		return
	}
	e.session.Cancel()
	e.onCollapsed = nil
	e.onExpanded = nil
	e.onHeight = nil
	e.disposed = true
}

// State returns the current display state.
func (e *Expandable) State() State { return e.state }

// Text returns the text to display.
func (e *Expandable) Text() Text { return e.rendered }

// CanonicalText returns the full caller-supplied text.
func (e *Expandable) CanonicalText() Text { return e.canonical }

// MaxLines returns the line cap the host should apply, or zero for none.
// The cap is lifted when an expansion starts and reapplied when a collapse
// ends.
func (e *Expandable) MaxLines() int {
	if e.state == StateCollapsed {
		return e.maxLines
	}
	return 0
}

// CollapsedMaxLines returns the configured collapsed line count.
func (e *Expandable) CollapsedMaxLines() int { return e.maxLines }

// Duration returns the configured transition duration.
func (e *Expandable) Duration() time.Duration { return e.duration }

// Hint returns the configured hint.
func (e *Expandable) Hint() Hint { return e.hint }

// Activatable reports whether Activate can change the display state.
func (e *Expandable) Activatable() bool { return e.activatable && !e.disposed }

// Animating reports whether a transition is in flight.
func (e *Expandable) Animating() bool { return e.session.Running() }

// NeedsMeasure reports whether the host should lay out the canonical text
// and call Remeasured.
func (e *Expandable) NeedsMeasure() bool { return e.dirty && !e.disposed }

// Height returns the height the widget should occupy. The second result is
// true while a transition controls the height explicitly; otherwise the
// height is the natural height for the current state.
func (e *Expandable) Height() (int, bool) {
	if e.explicitHeight {
		return e.height, true
	}
	if e.metrics == nil {
		return 0, false
	}
	if e.state == StateCollapsed && e.metrics.LineCount() > e.maxLines {
		return collapsedHeight(e.metrics, e.maxLines), false
	}
	return expandedHeight(e.metrics), false
}

func (e *Expandable) sessionStarted() {
	e.height = e.session.Height()
	e.explicitHeight = true
	if e.state == StateAnimatingExpand {
		// Lift the cap before the first frame so the full text is laid out
		// while the height opens.
		e.write(e.canonical)
	}
}

func (e *Expandable) frame(h int) {
	e.height = h
	if e.onHeight != nil {
		e.onHeight(h)
	}
}

func (e *Expandable) sessionEnded() {
	collapsing := e.state == StateAnimatingCollapse
	e.explicitHeight = false
	if collapsing {
		e.state = StateCollapsed
		if !e.dirty {
			e.applyTruncation()
		}
		if e.onCollapsed != nil {
			e.onCollapsed()
		}
		return
	}
	e.state = StateExpanded
	if e.onExpanded != nil {
		e.onExpanded()
	}
}

// applyTruncation derives the collapsed rendering from the canonical text.
// When truncation is unavailable the canonical text is shown under the line
// cap without a hint.
func (e *Expandable) applyTruncation() {
	r, err := CollapsedRendering(e.canonical, e.maxLines, e.metrics, e.hint)
	if err != nil {
		e.write(e.canonical)
		return
	}
	e.write(r.Text)
}

// write applies internally derived text when it differs from what is shown.
func (e *Expandable) write(t Text) {
	if e.rendered.Equal(t) {
		return
	}
	e.SetText(t, OriginInternal)
}
