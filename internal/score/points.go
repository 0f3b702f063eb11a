package score

import "github.com/ronesse/volley-score-v2/internal/feed"

// Points is the "current" per-set point pair for a match: the highest set
// slot holding any non-null value. Individual sides may still be null.
type Points struct {
	Set  int // 1-based set number
	Home *int
	Away *int
}

// CurrentPoints scans the snapshot's set slots from the highest index down
// and returns the first slot with any non-null value. ok is false when every
// slot is empty (match not started, or feed degraded).
func CurrentPoints(m feed.Match) (Points, bool) {
	for i := len(m.Sets) - 1; i >= 0; i-- {
		set := m.Sets[i]
		if set.Home == nil && set.Away == nil {
			continue
		}
		return Points{Set: i + 1, Home: set.Home, Away: set.Away}, true
	}
	return Points{}, false
}

// Increased reports whether this side's count grew from prior to cur. Both
// values must be present: a first sighting or a degraded field is a baseline,
// never a score.
func Increased(prior, cur *int) bool {
	return prior != nil && cur != nil && *cur > *prior
}
