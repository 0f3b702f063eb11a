// Package logtail reads the last N lines of the session log for the logs
// overlay.
//
// Read uses a ring buffer of size maxLines, so memory stays O(maxLines)
// regardless of how large the log file has grown over a long session. Lines
// come back in chronological order. A missing file is not an error; the
// overlay simply shows nothing until the first line lands.
//
// The package is deliberately small: no file watching, no rotation handling,
// no filtering. The UI re-reads on demand.
package logtail
