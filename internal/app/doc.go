// Package app provides the orchestration layer for the scoreboard.
//
// # Overview
//
// This package wires together configuration, the two pollers, the session
// store, the wake lock manager and the UI. It is the composition root: every
// dependency is constructed here and connected with sensible defaults.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read scoreboard config
//	       ├─────> feed.NewClient()     Live feed HTTP client
//	       ├─────> roster.NewClient()   Team directory HTTP client
//	       ├─────> state.NewStore()     Per-session derived state
//	       ├─────> wakelock.NewManager() Sleep inhibitor
//	       ├─────> StartLivePoller()    Fast feed loop
//	       ├─────> StartRosterPoller()  Slow roster loop
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Live Poller Loop:
//	┌─────────────────────────────────────────────┐
//	│ StartLivePoller() goroutine                 │
//	│  ├─> cancel previous in-flight cycle        │
//	│  ├─> FetchLive() under a child context      │
//	│  └─> store.UpdateLive()  (atomic)           │
//	│      └─> UI reads store.Snapshot()          │
//	└─────────────────────────────────────────────┘
//
// # Cycle cancellation
//
// Every live poll cycle gets its own child context. A tick that fires while
// the previous cycle is still in flight cancels it first; a cancelled
// cycle's result, even a successful one, is discarded before it reaches the
// store. Without this a response stuck behind a slow link could land after
// its successor and roll the scoreboard backwards.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Feed or roster client initialization failure (bad URL)
//
// Recoverable errors (logged, polling continues):
//   - Periodic feed fetch failures: the store keeps the last good data, the
//     next tick retries at the same cadence, and the UI shows an offline
//     indicator after repeated misses
//   - Roster fetch failures: the previous roster stays in effect
//
// # Logging
//
// The TUI owns the terminal, so the standard logger is redirected to the
// session log file (config.SessionLogPath). The UI's log view tails the
// same file.
package app
