package wakelock

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// Inhibitor acquires and releases one platform sleep inhibitor. Acquire
// while already held is a no-op; Release while not held is a no-op. Both may
// be called any number of times.
type Inhibitor interface {
	Acquire(ctx context.Context) error
	Release() error
}

// Systemd holds a sleep/idle inhibitor by keeping a systemd-inhibit child
// process alive. The child runs "sleep infinity" under the inhibitor lock
// and is killed on release. Hosts without systemd-inhibit simply fail
// Acquire; callers treat that as "no lock available".
type Systemd struct {
	mu  sync.Mutex
	cmd *exec.Cmd
	who string
	why string
}

var _ Inhibitor = (*Systemd)(nil)

// NewSystemd builds a systemd-inhibit backed Inhibitor.
func NewSystemd(who, why string) *Systemd {
	return &Systemd{who: who, why: why}
}

// Acquire starts the inhibitor process if one is not already running. A
// child that died behind our back (platform revoked the lock) is detected
// and replaced.
func (s *Systemd) Acquire(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		if s.cmd.ProcessState == nil {
			return nil // still held
		}
		s.cmd = nil // child exited: lock was revoked
	}

	cmd := exec.CommandContext(ctx, "systemd-inhibit",
		"--what=idle:sleep",
		"--who="+s.who,
		"--why="+s.why,
		"--mode=block",
		"sleep", "infinity")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start systemd-inhibit: %w", err)
	}
	s.cmd = cmd

	// Reap the child when it exits so ProcessState gets populated and a
	// revoked lock is visible to the next Acquire.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Release kills the inhibitor process if one is running.
func (s *Systemd) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil {
		return nil
	}
	cmd := s.cmd
	s.cmd = nil
	if cmd.Process != nil && cmd.ProcessState == nil {
		if err := cmd.Process.Kill(); err != nil {
			return fmt.Errorf("stop systemd-inhibit: %w", err)
		}
	}
	return nil
}

// Noop is an Inhibitor for platforms without a usable inhibitor tool.
type Noop struct{}

var _ Inhibitor = Noop{}

func (Noop) Acquire(context.Context) error { return nil }
func (Noop) Release() error                { return nil }
