package unfold_test

import (
	"math"
	"testing"
	"time"

	"github.com/fwojciec/unfold"
	"github.com/stretchr/testify/assert"
)

// recorder captures session hook calls in order.
type recorder struct {
	events  []string
	heights []int
}

func (r *recorder) attach(s *unfold.Session) {
	s.OnStart = func() { r.events = append(r.events, "start") }
	s.OnFrame = func(h int) {
		r.events = append(r.events, "frame")
		r.heights = append(r.heights, h)
	}
	s.OnEnd = func() { r.events = append(r.events, "end") }
}

func TestSession_Start(t *testing.T) {
	t.Parallel()

	t.Run("zero duration resolves in one step", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		var rec recorder
		rec.attach(&s)

		assert.True(t, s.Start(3, 5, 0, nil))
		assert.Equal(t, []string{"start", "frame", "end"}, rec.events)
		assert.Equal(t, []int{5}, rec.heights)
		assert.False(t, s.Running())
		assert.Equal(t, 5, s.Height())
	})

	t.Run("negative duration resolves immediately", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		var rec recorder
		rec.attach(&s)

		assert.True(t, s.Start(5, 3, -time.Second, unfold.Linear))
		assert.Equal(t, []string{"start", "frame", "end"}, rec.events)
		assert.Equal(t, time.Duration(0), s.Duration())
	})

	t.Run("positive duration waits for ticks", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		var rec recorder
		rec.attach(&s)

		assert.True(t, s.Start(0, 10, time.Second, unfold.Linear))
		assert.Equal(t, []string{"start"}, rec.events)
		assert.True(t, s.Running())
		assert.Equal(t, 0, s.Height())
	})

	t.Run("start while running is rejected", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		var rec recorder
		rec.attach(&s)

		assert.True(t, s.Start(0, 10, time.Second, unfold.Linear))
		assert.False(t, s.Start(10, 0, 0, unfold.Linear))
		assert.Equal(t, []string{"start"}, rec.events)
		assert.True(t, s.Running())
	})

	t.Run("hooks are optional", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		assert.True(t, s.Start(1, 2, 0, nil))
		assert.Equal(t, 2, s.Height())
	})
}

func TestSession_Tick(t *testing.T) {
	t.Parallel()

	t.Run("interpolates with the easing", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		var rec recorder
		rec.attach(&s)
		s.Start(0, 100, time.Second, unfold.Linear)

		assert.Equal(t, 25, s.Tick(0.25))
		assert.Equal(t, 50, s.Tick(0.5))
		assert.Equal(t, 100, s.Tick(1))
		assert.Equal(t, []int{25, 50, 100}, rec.heights)
		assert.Equal(t, []string{"start", "frame", "frame", "frame", "end"}, rec.events)
		assert.False(t, s.Running())
	})

	t.Run("default easing accelerates then decelerates", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		s.Start(0, 100, time.Second, nil)

		assert.Equal(t, 15, s.Tick(0.25))
		assert.Equal(t, 50, s.Tick(0.5))
		assert.Equal(t, 85, s.Tick(0.75))
	})

	t.Run("collapsing heights decrease", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		s.Start(5, 3, time.Second, unfold.Linear)
		assert.Equal(t, 4, s.Tick(0.5))
		assert.Equal(t, 3, s.Tick(1))
	})

	t.Run("fractions are clamped", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		var rec recorder
		rec.attach(&s)
		s.Start(0, 10, time.Second, unfold.Linear)

		assert.Equal(t, 0, s.Tick(-1))
		assert.Equal(t, 0, s.Tick(math.NaN()))
		assert.Equal(t, 10, s.Tick(7))
		assert.Equal(t, "end", rec.events[len(rec.events)-1])
	})

	t.Run("ticks after completion are ignored", func(t *testing.T) {
		t.Parallel()

		var s unfold.Session
		var rec recorder
		rec.attach(&s)
		s.Start(0, 10, time.Second, unfold.Linear)
		s.Tick(1)
		n := len(rec.events)

		assert.Equal(t, 10, s.Tick(0.5))
		assert.Len(t, rec.events, n)
	})
}

func TestSession_Cancel(t *testing.T) {
	t.Parallel()

	var s unfold.Session
	var rec recorder
	rec.attach(&s)
	s.Start(0, 10, time.Second, unfold.Linear)
	s.Tick(0.3)

	s.Cancel()
	assert.False(t, s.Running())
	assert.Equal(t, 3, s.Tick(1), "no final height applied")
	assert.Equal(t, []string{"start", "frame"}, rec.events)

	// A cancelled session can start again.
	assert.True(t, s.Start(3, 0, 0, unfold.Linear))
	assert.Equal(t, 0, s.Height())
}

func TestEasing(t *testing.T) {
	t.Parallel()

	t.Run("accelerate decelerate", func(t *testing.T) {
		t.Parallel()

		f := unfold.AccelerateDecelerate
		assert.InDelta(t, 0, f(0), 1e-9)
		assert.InDelta(t, 0.5, f(0.5), 1e-9)
		assert.InDelta(t, 1, f(1), 1e-9)

		prev := f(0)
		for i := 1; i <= 20; i++ {
			x := float64(i) / 20
			assert.InDelta(t, 1, f(x)+f(1-x), 1e-9, "symmetric at %v", x)
			assert.GreaterOrEqual(t, f(x), prev, "monotonic at %v", x)
			prev = f(x)
		}
		assert.Less(t, f(0.1), 0.1, "slow start")
		assert.Greater(t, f(0.9), 0.9, "slow end")
	})

	t.Run("linear", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.3, unfold.Linear(0.3))
	})
}

func TestState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state     unfold.State
		name      string
		animating bool
	}{
		{unfold.StateCollapsed, "collapsed", false},
		{unfold.StateExpanded, "expanded", false},
		{unfold.StateAnimatingExpand, "animating-expand", true},
		{unfold.StateAnimatingCollapse, "animating-collapse", true},
		{unfold.State(42), "State(42)", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.state.String())
		assert.Equal(t, tt.animating, tt.state.Animating(), tt.name)
	}
}
