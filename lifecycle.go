package unfold

// Disposer releases resources tied to an owner's lifetime.
type Disposer interface {
	Dispose()
}

// Lifecycle disposes bound resources when its owner is torn down. The host
// decides when teardown happens and calls TearDown.
type Lifecycle struct {
	disposers []Disposer
	done      bool
}

// Bind registers d for disposal on teardown. If the lifecycle is already
// torn down, d is disposed immediately.
func (l *Lifecycle) Bind(d Disposer) {
	if d == nil {
		return
	}
	if l.done {
		d.Dispose()
		return
	}
	l.disposers = append(l.disposers, d)
}

// TearDown disposes every bound resource in reverse bind order. Calls after
// the first are no-ops.
func (l *Lifecycle) TearDown() {
	if l.done {
		return
	}
	l.done = true
	for i := len(l.disposers) - 1; i >= 0; i-- {
		l.disposers[i].Dispose()
	}
	l.disposers = nil
}

// Done reports whether TearDown has been called.
func (l *Lifecycle) Done() bool { return l.done }
