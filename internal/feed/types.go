package feed

import (
	"fmt"
	"strings"
	"time"
)

// Match mirrors one entry of the live-feed payload. Snapshots are immutable
// and replaced wholesale on every poll; all derived state lives elsewhere.
type Match struct {
	ID          string     `json:"id"`
	HomeTeamID  int64      `json:"homeTeamId"`
	AwayTeamID  int64      `json:"awayTeamId"`
	HomeName    string     `json:"homeTeam"`
	AwayName    string     `json:"awayTeam"`
	Status      string     `json:"status"`
	StatusText  string     `json:"statusText"`
	Sets        []SetScore `json:"sets"`
	SetsWonHome int        `json:"setsWonHome"`
	SetsWonAway int        `json:"setsWonAway"`
	StartEpoch  int64      `json:"startTime"`
	Tournament  string     `json:"tournament"`
	Season      string     `json:"season"`
}

// SetScore is one per-set point pair. The feed reports null for points it has
// not seen yet, so both sides are pointers.
type SetScore struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Key identifies a match across polls.
type Key string

// Key returns the snapshot's stable id when the feed provides one. Some
// fixtures arrive without an id; those fall back to a composite of start time
// and both team names.
func (m Match) Key() Key {
	if id := strings.TrimSpace(m.ID); id != "" {
		return Key(id)
	}
	return Key(fmt.Sprintf("%d|%s|%s", m.StartEpoch, m.HomeName, m.AwayName))
}

// StartTime returns the scheduled start as a time.Time.
func (m Match) StartTime() time.Time {
	if m.StartEpoch <= 0 {
		return time.Time{}
	}
	return time.Unix(m.StartEpoch, 0)
}

// IsLive reports whether the feed marks the match as in progress.
func (m Match) IsLive() bool {
	return strings.EqualFold(strings.TrimSpace(m.Status), "live")
}

// IsFinished reports whether the feed marks the match as over.
func (m Match) IsFinished() bool {
	return strings.EqualFold(strings.TrimSpace(m.Status), "finished")
}
