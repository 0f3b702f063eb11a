package wakelock

import (
	"context"
	"log"
	"sync"
)

// Conditions are the preconditions for holding the lock, re-evaluated on
// every reconciliation step and on every focus/visibility event.
type Conditions struct {
	Focused       bool // a match is focused
	Live          bool // the focused match is live
	HasCurrentSet bool // its current set number is known
}

// Want reports whether the lock should be held.
func (c Conditions) Want() bool {
	return c.Focused && c.Live && c.HasCurrentSet
}

// Manager owns the process-wide single lock and decides when to hold it. All
// transitions run under one mutex so a release can never overtake a pending
// acquire. Acquisition failures are swallowed: keeping the screen awake is a
// convenience, never a user-facing error.
type Manager struct {
	mu      sync.Mutex
	inh     Inhibitor
	held    bool
	visible bool
	done    bool
}

// NewManager wraps the given Inhibitor. The document starts visible.
func NewManager(inh Inhibitor) *Manager {
	if inh == nil {
		inh = Noop{}
	}
	return &Manager{inh: inh, visible: true}
}

// Apply reconciles the lock against the current preconditions.
func (m *Manager) Apply(ctx context.Context, c Conditions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(ctx, c)
}

// SetVisible records a visibility change. The platform may silently revoke
// the lock while the document is hidden, so a hidden→visible transition
// re-acquires when the preconditions still hold.
func (m *Manager) SetVisible(ctx context.Context, visible bool, c Conditions) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasVisible := m.visible
	m.visible = visible
	if visible && !wasVisible && c.Want() && !m.done {
		// Force a fresh acquire even if we believe we hold the lock.
		m.held = false
	}
	m.apply(ctx, c)
}

// Shutdown releases unconditionally and refuses further acquisition. Safe to
// call more than once and in any teardown order.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.done = true
	if m.held {
		if err := m.inh.Release(); err != nil {
			log.Printf("wakelock: release on shutdown: %v", err)
		}
		m.held = false
	}
}

// Held reports whether the manager believes it holds the lock.
func (m *Manager) Held() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held
}

// apply runs the acquire/release decision. Caller holds the mutex.
func (m *Manager) apply(ctx context.Context, c Conditions) {
	if m.done {
		return
	}

	want := c.Want()
	switch {
	case want && !m.held:
		if err := m.inh.Acquire(ctx); err != nil {
			log.Printf("wakelock: acquire: %v", err)
			return
		}
		m.held = true
	case !want && m.held:
		if err := m.inh.Release(); err != nil {
			log.Printf("wakelock: release: %v", err)
		}
		m.held = false
	}
}
