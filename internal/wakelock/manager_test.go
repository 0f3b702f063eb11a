package wakelock

import (
	"context"
	"errors"
	"testing"
)

// fakeInhibitor records acquire/release calls and can be told to fail.
type fakeInhibitor struct {
	held       bool
	acquires   int
	releases   int
	acquireErr error
}

func (f *fakeInhibitor) Acquire(context.Context) error {
	f.acquires++
	if f.acquireErr != nil {
		return f.acquireErr
	}
	f.held = true
	return nil
}

func (f *fakeInhibitor) Release() error {
	f.releases++
	f.held = false
	return nil
}

func allTrue() Conditions {
	return Conditions{Focused: true, Live: true, HasCurrentSet: true}
}

func TestManager_AcquireIffAllPreconditionsHold(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		c    Conditions
		want bool
	}{
		{"all hold", allTrue(), true},
		{"not focused", Conditions{Live: true, HasCurrentSet: true}, false},
		{"not live", Conditions{Focused: true, HasCurrentSet: true}, false},
		{"no current set", Conditions{Focused: true, Live: true}, false},
		{"nothing", Conditions{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInhibitor{}
			m := NewManager(fake)
			m.Apply(ctx, tt.c)
			if m.Held() != tt.want {
				t.Fatalf("Held = %v, want %v", m.Held(), tt.want)
			}
		})
	}
}

func TestManager_ReleaseWhenAnyPreconditionFlipsFalse(t *testing.T) {
	ctx := context.Background()

	flips := []Conditions{
		{Live: true, HasCurrentSet: true},    // focus lost
		{Focused: true, HasCurrentSet: true}, // match finished
		{Focused: true, Live: true},          // current set gone
	}

	for _, flipped := range flips {
		fake := &fakeInhibitor{}
		m := NewManager(fake)

		m.Apply(ctx, allTrue())
		if !m.Held() {
			t.Fatalf("setup: lock not held")
		}

		m.Apply(ctx, flipped)
		if m.Held() || fake.held {
			t.Fatalf("lock still held after precondition flip %+v", flipped)
		}
	}
}

func TestManager_ReacquireIsNoopWhileHeld(t *testing.T) {
	ctx := context.Background()
	fake := &fakeInhibitor{}
	m := NewManager(fake)

	m.Apply(ctx, allTrue())
	m.Apply(ctx, allTrue())
	m.Apply(ctx, allTrue())

	if fake.acquires != 1 {
		t.Fatalf("acquires = %d, want 1 (re-request while held is a no-op)", fake.acquires)
	}
}

func TestManager_HiddenThenVisibleReacquires(t *testing.T) {
	ctx := context.Background()
	fake := &fakeInhibitor{}
	m := NewManager(fake)

	m.Apply(ctx, allTrue())
	m.SetVisible(ctx, false, allTrue())
	// Platform silently revokes while hidden.
	fake.held = false

	m.SetVisible(ctx, true, allTrue())
	if fake.acquires != 2 {
		t.Fatalf("acquires = %d, want re-acquire on hidden→visible", fake.acquires)
	}
	if !fake.held || !m.Held() {
		t.Fatalf("lock not re-held after becoming visible")
	}
}

func TestManager_VisibleTransitionWithoutPreconditionsDoesNothing(t *testing.T) {
	ctx := context.Background()
	fake := &fakeInhibitor{}
	m := NewManager(fake)

	m.SetVisible(ctx, false, Conditions{})
	m.SetVisible(ctx, true, Conditions{})
	if fake.acquires != 0 {
		t.Fatalf("acquires = %d, want 0", fake.acquires)
	}
}

func TestManager_AcquireFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	fake := &fakeInhibitor{acquireErr: errors.New("denied")}
	m := NewManager(fake)

	m.Apply(ctx, allTrue())
	if m.Held() {
		t.Fatalf("Held = true after failed acquire")
	}

	// Next reconciliation simply tries again.
	fake.acquireErr = nil
	m.Apply(ctx, allTrue())
	if !m.Held() {
		t.Fatalf("Held = false after retry")
	}
}

func TestManager_ShutdownIsUnconditionalAndIdempotent(t *testing.T) {
	ctx := context.Background()
	fake := &fakeInhibitor{}
	m := NewManager(fake)

	m.Apply(ctx, allTrue())
	m.Shutdown()
	if m.Held() || fake.held {
		t.Fatalf("lock survives shutdown")
	}

	m.Shutdown() // second call must be safe
	m.Apply(ctx, allTrue())
	if m.Held() {
		t.Fatalf("manager acquired after shutdown")
	}
	if fake.releases != 1 {
		t.Fatalf("releases = %d, want 1", fake.releases)
	}
}

func TestManager_NilInhibitorDefaultsToNoop(t *testing.T) {
	m := NewManager(nil)
	m.Apply(context.Background(), allTrue())
	if !m.Held() {
		t.Fatalf("noop inhibitor should acquire cleanly")
	}
}
