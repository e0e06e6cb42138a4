// Package trigger provides the timer and proximity trigger system. A
// Manager owns a set of triggers and steps them once per game tick;
// triggers fire their callbacks and, when configured, remove
// themselves once done.
//
// The package is single-threaded by design: a Manager belongs to one
// update loop and must not be shared across goroutines.
package trigger

// Callback is invoked when a trigger fires. It receives the trigger
// that fired, so one callback can serve several triggers.
type Callback func(Trigger)

// Trigger is a condition checked once per tick. Update returns true
// when the trigger is finished and can be dropped by its manager.
type Trigger interface {
	// Update advances the trigger by dt seconds and fires the
	// callback when the condition is met.
	Update(dt float64) bool

	// Reset returns the trigger to its untriggered state.
	Reset()

	// Name returns the trigger's display name, possibly empty.
	Name() string

	// Triggered reports whether the trigger has fired and not been
	// reset since.
	Triggered() bool

	// AutoRemove reports whether the manager should drop the trigger
	// once Update returns true.
	AutoRemove() bool
}

// Base holds the firing state shared by the concrete triggers. Embed
// it and call fire from Update.
type Base struct {
	name       string
	callback   Callback
	autoRemove bool

	running   bool
	triggered bool
}

// NewBase returns trigger state with the given name and callback.
func NewBase(name string, callback Callback, autoRemove bool) Base {
	return Base{name: name, callback: callback, autoRemove: autoRemove}
}

// Name returns the trigger's name.
func (b *Base) Name() string { return b.name }

// Triggered reports whether the trigger has fired since the last reset.
func (b *Base) Triggered() bool { return b.triggered }

// Running reports whether the callback is currently executing.
func (b *Base) Running() bool { return b.running }

// AutoRemove reports whether the trigger should be dropped once done.
func (b *Base) AutoRemove() bool { return b.autoRemove }

// Reset clears the firing state.
func (b *Base) Reset() {
	b.running = false
	b.triggered = false
}

// fire runs the callback and marks the trigger as triggered. The
// concrete trigger passes itself so the callback sees the full type.
func (b *Base) fire(t Trigger) {
	b.running = true
	if b.callback != nil {
		b.callback(t)
	}
	b.triggered = true
	b.running = false
}
