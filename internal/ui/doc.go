// Package ui implements the Bubble Tea scoreboard interface.
//
// # Overview
//
// The UI is a single Bubble Tea model over two views: the match list and a
// session log tail. It never talks to the network; on every tick it pulls a
// fresh state.Snapshot from the store and renders it. All reconstruction
// (serve possession, rally labels, flash markers, classification) happens in
// the state and score packages; this package only projects and styles.
//
// # Data flow
//
//	tick ──> store.Snapshot() ──> snapshotMsg ──> buildRows ──> View()
//
// # Flash markers
//
// The store hands out per-side flash generations. flashTracker compares
// generations across snapshots so a marker lights exactly once per point,
// then the model keeps it lit for a few UI ticks so a human can see it.
//
// # Focus and the wake lock
//
// Enter toggles focus on the selected match. Focus, the focused match being
// live, and a known current set together decide whether the wake lock is
// held; the model re-applies that decision after every snapshot and on every
// terminal focus/blur event (tea.FocusMsg, tea.BlurMsg — focus reporting is
// enabled in Run). Cycling the bucket filter clears focus, since the focused
// match may no longer be visible.
//
// # Themes
//
// Three color themes cycle on T and persist via the prefs package, along
// with the active filter.
package ui
