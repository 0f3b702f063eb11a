// Package feed provides the HTTP client and payload types for the live
// volleyball score feed.
//
// # Overview
//
// The feed exposes a single endpoint returning every match the provider is
// currently tracking. Each poll returns a full replacement array; the feed
// carries no deltas and no serve information. Everything the application
// derives (serve possession, break points, flash markers) is reconstructed
// elsewhere from successive snapshots of these types.
//
// # Payload shape
//
//	GET /api/live
//
//	{
//	  "matches": [
//	    {
//	      "id": "m-2041",
//	      "homeTeamId": 501, "awayTeamId": 614,
//	      "homeTeam": "Viking TIF", "awayTeam": "KFUM Volda",
//	      "status": "live", "statusText": "2. sett",
//	      "sets": [{"home": 25, "away": 20}, {"home": 12, "away": 10}, {"home": null, "away": null}],
//	      "setsWonHome": 1, "setsWonAway": 0,
//	      "startTime": 1756090800,
//	      "tournament": "Eliteserien", "season": "2025/2026"
//	    }
//	  ]
//	}
//
// Set slots are unbounded in number and individually nullable: the feed pads
// the array with null pairs for sets not yet played, and may omit values for
// sets it has partial data on. Consumers must treat every point as possibly
// absent.
//
// # Match identity
//
// Match.Key prefers the feed's stable id. Some fixtures (typically lower
// divisions) arrive without one; those fall back to startTime plus both team
// names, which is stable for the lifetime of a session.
//
// # Error handling
//
// FetchLive decodes the envelope first and each match entry individually. A
// malformed entry is logged and dropped so the remaining matches still
// render. Transport errors and non-2xx statuses are returned to the caller;
// the poller decides what survives a failed cycle.
package feed
