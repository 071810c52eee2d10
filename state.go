package unfold

import "fmt"

// State is the display state of an Expandable.
//
//	           Activate              session end
//	Collapsed ─────────► AnimatingExpand ─────────► Expanded
//	    ▲                                              │
//	    │  session end                     Activate    │
//	    └──────────────── AnimatingCollapse ◄──────────┘
//
// Activate during either animating state is ignored.
type State int

const (
	StateCollapsed State = iota
	StateExpanded
	StateAnimatingExpand
	StateAnimatingCollapse
)

func (s State) String() string {
	switch s {
	case StateCollapsed:
		return "collapsed"
	case StateExpanded:
		return "expanded"
	case StateAnimatingExpand:
		return "animating-expand"
	case StateAnimatingCollapse:
		return "animating-collapse"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animating reports whether s is a transitional state.
func (s State) Animating() bool {
	return s == StateAnimatingExpand || s == StateAnimatingCollapse
}
