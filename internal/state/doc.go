// Package state provides the per-session store and the reconciler that
// derives serve possession, play labels, flash markers, and classification
// from successive live-feed polls.
//
// # Overview
//
// The live feed is stateless: every poll delivers a full replacement array
// of match snapshots with nothing but raw point pairs. The Store is where
// those snapshots meet the previous cycle, producing everything the UI
// renders that the feed never says.
//
// # Architecture
//
//	Producer (pollers):                 Consumer (UI):
//	┌─────────────────────┐            ┌──────────────────┐
//	│ FetchLive()         │            │                  │
//	│   ↓                 │            │                  │
//	│ store.UpdateLive()  │───────────→│ store.Snapshot() │
//	│                     │  (mutex)   │   ↓              │
//	│ FetchTeams()        │            │ view model       │
//	│   ↓                 │            │                  │
//	│ store.UpdateRoster()│            │                  │
//	└─────────────────────┘            └──────────────────┘
//
// # Reconciliation per match
//
//  1. Compute the match key (feed id, or start-time + names fallback).
//  2. Find the current point pair: highest set slot with any non-null value.
//  3. Compare against the key's stored baseline. A side scored iff both the
//     prior and current value exist and the current one is greater. A first
//     sighting only establishes the baseline.
//  4. Stamp a fresh generation-counter flash marker per side that scored.
//  5. Advance the serve machine with the rally winner (or no one).
//  6. Classify against the latest roster index.
//
// The output is a full replacement list for the cycle. Matches absent from a
// poll are skipped, not deleted: their serve state and point baseline are
// retained in case the feed brings them back.
//
// Set transitions cannot register as scores because the comparison always
// runs against the previous cycle's current pair: when a new set opens, its
// low points are not greater than the finished set's finals.
//
// When both sides' counts grew within one poll window, the poll spanned
// several rallies and the last winner is unknowable. Possession is left
// unchanged (both flash markers still fire); the next single-rally delta
// resynchronizes the machine.
//
// # Error semantics
//
// UpdateLive with an error keeps all previous derived data, records the
// error for the UI banner, and counts consecutive failures for the offline
// indicator. UpdateRoster with an error keeps the previous roster; a missing
// roster merely classifies everything as "other". There is no backoff —
// every tick retries.
//
// # Concurrency
//
// One writer (the pollers, one cycle at a time), many readers (the UI tick).
// A sync.RWMutex guards the tables; Snapshot returns copies so the UI can
// never observe a torn cycle. Superseded poll cycles are discarded by the
// poller before they ever reach the Store.
package state
