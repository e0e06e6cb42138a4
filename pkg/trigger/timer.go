package trigger

// Timer fires once its delay has elapsed. A recurring timer resets and
// fires again every delay; a one-shot timer reports itself done on the
// tick after firing so the manager can drop it.
type Timer struct {
	Base
	delay     float64
	recurring bool
	elapsed   float64
}

// NewTimer returns a timer firing after delay seconds.
func NewTimer(delay float64, callback Callback, recurring bool) *Timer {
	t := &Timer{
		Base:      NewBase("", callback, !recurring),
		delay:     delay,
		recurring: recurring,
	}
	t.Reset()
	return t
}

// Update accumulates time and fires when the delay is reached. The
// done signal for a one-shot timer comes on the update after the fire,
// preserving the triggered state for one tick of observation.
func (t *Timer) Update(dt float64) bool {
	if t.triggered {
		t.Reset()
		if !t.recurring {
			return true
		}
	}

	t.elapsed += dt
	if t.elapsed >= t.delay {
		t.fire(t)
	}
	return false
}

// Reset restarts the timer from zero elapsed time.
func (t *Timer) Reset() {
	t.Base.Reset()
	t.elapsed = 0
}

// Delay returns the configured delay in seconds.
func (t *Timer) Delay() float64 { return t.delay }

// Recurring reports whether the timer restarts after firing.
func (t *Timer) Recurring() bool { return t.recurring }
