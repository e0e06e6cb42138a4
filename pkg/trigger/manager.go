package trigger

import (
	"context"

	"github.com/opd-ai/go-gamekit/pkg/geom"
	"github.com/opd-ai/go-gamekit/pkg/ident"
	"github.com/opd-ai/go-gamekit/pkg/logging"
)

type managed struct {
	id   ident.ID
	trig Trigger
}

// Manager owns a set of triggers and updates them each tick, dropping
// the ones that report done and are marked auto-remove. Not safe for
// concurrent use.
type Manager struct {
	log      *logging.Logger
	ids      *ident.Allocator
	triggers []managed
}

// NewManager returns an empty trigger manager.
func NewManager(log *logging.Logger) *Manager {
	if log == nil {
		log = logging.NewLogger()
	}
	return &Manager{
		log: log,
		ids: ident.New(1),
	}
}

// Update advances every trigger by dt seconds and erases the finished
// auto-remove ones in place.
func (m *Manager) Update(ctx context.Context, dt float64) {
	kept := m.triggers[:0]
	for _, entry := range m.triggers {
		done := entry.trig.Update(dt)
		if done && entry.trig.AutoRemove() {
			m.log.Debug(ctx, "trigger removed",
				"trigger_id", uint64(entry.id),
				"name", entry.trig.Name(),
			)
			continue
		}
		kept = append(kept, entry)
	}
	m.triggers = kept
}

// Add registers a trigger and returns its assigned ID.
func (m *Manager) Add(t Trigger) ident.ID {
	id, _ := m.ids.Next()
	m.triggers = append(m.triggers, managed{id: id, trig: t})
	return id
}

// AddTimer registers a new timer trigger and returns it.
func (m *Manager) AddTimer(delay float64, callback Callback, recurring bool) *Timer {
	t := NewTimer(delay, callback, recurring)
	m.Add(t)
	return t
}

// AddProximity registers a new proximity trigger and returns it.
func (m *Manager) AddProximity(name string, target geom.Positioned, volume geom.Volume, callback Callback) *Proximity {
	p := NewProximity(name, target, volume, callback)
	m.Add(p)
	return p
}

// Remove unregisters a trigger. Removing an unknown trigger is a no-op.
func (m *Manager) Remove(t Trigger) {
	for i, entry := range m.triggers {
		if entry.trig == t {
			m.triggers = append(m.triggers[:i], m.triggers[i+1:]...)
			return
		}
	}
}

// Clear drops all registered triggers.
func (m *Manager) Clear() {
	m.triggers = nil
}

// Len returns the number of registered triggers.
func (m *Manager) Len() int {
	return len(m.triggers)
}
