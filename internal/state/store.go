package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/ronesse/volley-score-v2/internal/feed"
	"github.com/ronesse/volley-score-v2/internal/roster"
	"github.com/ronesse/volley-score-v2/internal/score"
)

// Flash marks that a side's point count increased in the most recent poll.
// The zero value means unchanged. The generation number is globally
// monotonic within a session; its contract is inequality across renders, not
// any particular value.
type Flash struct {
	gen uint64
}

// JustIncreased reports whether this side scored in the latest cycle.
func (f Flash) JustIncreased() bool {
	return f.gen != 0
}

// Generation returns the marker's generation, 0 when unchanged.
func (f Flash) Generation() uint64 {
	return f.gen
}

// MatchState is the fully derived per-match state handed to the UI: the raw
// snapshot plus everything reconstructed from the delta against the previous
// cycle.
type MatchState struct {
	Key       feed.Key
	Match     feed.Match
	Points    score.Points
	HasPoints bool
	Serve     score.Serve
	Play      *score.Play
	FlashHome Flash
	FlashAway Flash
	Category  score.Category
}

// Snapshot is the latest derived data available to the UI.
type Snapshot struct {
	Matches             []MatchState
	LastUpdated         time.Time
	LastError           error
	RosterError         error
	RosterTeams         int
	ConsecutiveFailures int
}

// IsOffline returns true when the feed has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// ByKey returns the derived state for one match of the latest cycle.
func (s Snapshot) ByKey(key feed.Key) (MatchState, bool) {
	for _, m := range s.Matches {
		if m.Key == key {
			return m, true
		}
	}
	return MatchState{}, false
}

// Store owns all per-session derived state and reconciles each poll against
// the previous one. Every session gets its own Store; there is no package
// level instance, so independent sessions (tests, multiple views) cannot
// interfere.
type Store struct {
	mu      sync.RWMutex
	country string

	// Persistent per-key tables. Keys absent from a poll are retained, not
	// deleted: if the match reappears its serve state and point baseline
	// resume where they left off. Neither table is ever implicitly reset.
	serves map[feed.Key]score.Serve
	points map[feed.Key]score.Points

	rosterIndex map[int64]roster.Team
	rosterCount int

	gen     uint64
	derived []MatchState

	lastUpdated         time.Time
	lastError           error
	rosterError         error
	consecutiveFailures int
}

// NewStore creates a session store classifying against the given federation
// country.
func NewStore(country string) *Store {
	return &Store{
		country: country,
		serves:  make(map[feed.Key]score.Serve),
		points:  make(map[feed.Key]score.Points),
	}
}

// UpdateLive reconciles one poll result. When err is non-nil the previous
// derived data is kept untouched and the error is recorded for visibility;
// the next tick retries unconditionally.
func (s *Store) UpdateLive(matches []feed.Match, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUpdated = time.Now()
	if err != nil {
		s.lastError = err
		s.consecutiveFailures++
		return
	}

	derived := make([]MatchState, 0, len(matches))
	for _, m := range matches {
		derived = append(derived, s.reconcile(m))
	}

	s.derived = derived
	s.lastError = nil
	s.consecutiveFailures = 0
}

// reconcile derives one match's state from its snapshot and the per-key
// tables. Caller holds the write lock.
func (s *Store) reconcile(m feed.Match) MatchState {
	key := m.Key()
	cur, hasPoints := score.CurrentPoints(m)

	var homeScored, awayScored bool
	if hasPoints {
		if prior, seen := s.points[key]; seen {
			homeScored = score.Increased(prior.Home, cur.Home)
			awayScored = score.Increased(prior.Away, cur.Away)
		}
		// First sighting establishes the baseline and can never score.
		s.points[key] = cur
	}

	// The serve machine wants the single rally winner. When both counts grew
	// the poll spanned several rallies and the last winner is unknowable, so
	// possession stays as it was; the flash markers still fire per side.
	scored := homeScored != awayScored
	var scorer score.Side
	if homeScored {
		scorer = score.SideHome
	} else if awayScored {
		scorer = score.SideAway
	}

	serve, play := score.Advance(s.serves[key], scorer, scored)
	s.serves[key] = serve

	ms := MatchState{
		Key:       key,
		Match:     m,
		Points:    cur,
		HasPoints: hasPoints,
		Serve:     serve,
		Play:      play,
		Category:  score.Classify(m.HomeTeamID, m.AwayTeamID, s.rosterIndex, s.country),
	}
	if homeScored {
		s.gen++
		ms.FlashHome = Flash{gen: s.gen}
	}
	if awayScored {
		s.gen++
		ms.FlashAway = Flash{gen: s.gen}
	}
	return ms
}

// UpdateRoster replaces the roster side input. On error the previous roster
// is kept; an empty or stale roster only degrades classification to "other".
func (s *Store) UpdateRoster(teams []roster.Team, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.rosterError = err
		return
	}
	s.rosterIndex = roster.ByForeignID(teams)
	s.rosterCount = len(teams)
	s.rosterError = nil
}

// Snapshot returns a copy of the current derived state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		LastUpdated:         s.lastUpdated,
		RosterTeams:         s.rosterCount,
		ConsecutiveFailures: s.consecutiveFailures,
	}
	if len(s.derived) > 0 {
		snap.Matches = make([]MatchState, len(s.derived))
		copy(snap.Matches, s.derived)
	}
	if s.lastError != nil {
		snap.LastError = fmt.Errorf("%w", s.lastError)
	}
	if s.rosterError != nil {
		snap.RosterError = fmt.Errorf("%w", s.rosterError)
	}
	return snap
}
