package watch

import (
	"sync"

	"github.com/agentcash/backend/internal/store"
)

// Manager maintains at most one live subscription per owner.
//
// A subscription is established lazily on the first request for an
// owner and owned by the Manager until Detach or Close releases it.
// This prevents two concurrent notification streams from writing to
// the same derived state.
type Manager struct {
	store store.RecordStore

	mu       sync.Mutex
	watchers map[string]*Watcher
}

// NewManager returns a Manager using the record store.
func NewManager(s store.RecordStore) *Manager {
	return &Manager{
		store:    s,
		watchers: make(map[string]*Watcher),
	}
}

// Watcher returns the owner's Watcher, starting a subscription if none
// is active yet.
func (m *Manager) Watcher(ownerID string) (*Watcher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.watchers[ownerID]; ok {
		return w, nil
	}

	w, err := Start(m.store, ownerID)
	if err != nil {
		return nil, err
	}

	m.watchers[ownerID] = w
	return w, nil
}

// Detach cancels and removes the owner's subscription. Detaching an
// owner without an active subscription is a no-op.
func (m *Manager) Detach(ownerID string) {
	m.mu.Lock()
	w, ok := m.watchers[ownerID]
	delete(m.watchers, ownerID)
	m.mu.Unlock()

	if ok {
		w.Stop()
	}
}

// Close cancels all active subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	watchers := m.watchers
	m.watchers = make(map[string]*Watcher)
	m.mu.Unlock()

	for _, w := range watchers {
		w.Stop()
	}
}
