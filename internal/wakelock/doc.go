// Package wakelock keeps the machine from idling into sleep while the user
// is watching a focused live match.
//
// # Overview
//
// The Manager owns the single process-wide lock and re-evaluates three
// preconditions on every reconciliation step and every focus or visibility
// event:
//
//	hold ⇔ focused ∧ live ∧ current set known
//
// The moment any of them flips false the lock is released; it is released
// unconditionally on teardown. Acquiring while already held is a no-op.
//
// # Platform backend
//
// On Linux the lock is a systemd-inhibit child process holding an
// idle+sleep inhibitor; killing the child releases it. The platform may
// revoke the lock behind our back (the child exits), which Acquire detects
// and repairs. Where systemd-inhibit does not exist, acquisition fails and
// is logged — never surfaced to the user, since sleep inhibition is a
// convenience feature.
//
// # Visibility
//
// Terminals report focus in/out; a hidden session can lose the lock
// silently. On a hidden→visible transition the Manager forces a fresh
// acquire when the preconditions still hold.
//
// # Sequencing
//
// All transitions run under one mutex, so a release can never overtake a
// pending acquire, and Shutdown is idempotent in any teardown order.
package wakelock
