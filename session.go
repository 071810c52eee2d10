package unfold

import (
	"math"
	"time"
)

// Session drives one height transition. At most one transition runs at a
// time; Start on a running session is rejected.
//
// A Session does not keep time. The host delivers progress through Tick as
// the fraction of Duration that has elapsed.
type Session struct {
	// OnStart is called when a transition starts, before the first frame.
	OnStart func()
	// OnFrame receives every height the transition produces.
	OnFrame func(height int)
	// OnEnd is called when a transition completes. It is not called after
	// Cancel.
	OnEnd func()

	from     int
	to       int
	height   int
	duration time.Duration
	easing   Easing
	running  bool
}

// Start begins a transition from one height to another. A duration of zero
// or less resolves immediately: OnStart, the final frame and OnEnd all fire
// before Start returns. It reports whether a transition was started.
func (s *Session) Start(from, to int, duration time.Duration, easing Easing) bool {
	if s.running {
		return false
	}
	if easing == nil {
		easing = AccelerateDecelerate
	}
	s.from, s.to, s.height = from, to, from
	s.duration = max(duration, 0)
	s.easing = easing
	s.running = true

	if s.OnStart != nil {
		s.OnStart()
	}
	if s.duration == 0 && s.running {
		s.Tick(1)
	}
	return true
}

// Tick advances the transition to fraction of its duration and returns the
// current height. Fractions are clamped to [0, 1]; reaching 1 ends the
// transition. Ticks on an idle session return the last height.
func (s *Session) Tick(fraction float64) int {
	if !s.running {
		return s.height
	}
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction >= 1 {
		fraction = 1
	}
	if fraction == 1 {
		s.height = s.to
	} else {
		s.height = s.from + int(math.Round(s.easing(fraction)*float64(s.to-s.from)))
	}
	if s.OnFrame != nil {
		s.OnFrame(s.height)
	}
	if fraction == 1 && s.running {
		s.running = false
		if s.OnEnd != nil {
			s.OnEnd()
		}
	}
	return s.height
}

// Running reports whether a transition is in flight.
func (s *Session) Running() bool { return s.running }

// Height returns the most recent height produced.
func (s *Session) Height() int { return s.height }

// Duration returns the duration of the current or last transition.
func (s *Session) Duration() time.Duration { return s.duration }

// Cancel stops the transition without applying a final height and without
// calling OnEnd.
func (s *Session) Cancel() {
	s.running = false
}
