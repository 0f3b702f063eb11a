package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ronesse/volley-score-v2/internal/feed"
	"github.com/ronesse/volley-score-v2/internal/score"
	"github.com/ronesse/volley-score-v2/internal/state"
)

// MatchFilter selects which classification bucket is displayed.
type MatchFilter int

const (
	FilterAll MatchFilter = iota
	FilterFederation
	FilterAbroad
	FilterOther
)

// Label returns the display label for the filter.
func (f MatchFilter) Label() string {
	switch f {
	case FilterFederation:
		return "Federation"
	case FilterAbroad:
		return "Abroad"
	case FilterOther:
		return "Other"
	default:
		return "All"
	}
}

// Name returns the stable name used for preference persistence.
func (f MatchFilter) Name() string {
	switch f {
	case FilterFederation:
		return "federation"
	case FilterAbroad:
		return "abroad"
	case FilterOther:
		return "other"
	default:
		return "all"
	}
}

// Next returns the next filter in the cycle.
func (f MatchFilter) Next() MatchFilter {
	switch f {
	case FilterAll:
		return FilterFederation
	case FilterFederation:
		return FilterAbroad
	case FilterAbroad:
		return FilterOther
	default:
		return FilterAll
	}
}

// FilterFromName resolves a persisted filter name, defaulting to all.
func FilterFromName(name string) MatchFilter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "federation":
		return FilterFederation
	case "abroad":
		return FilterAbroad
	case "other":
		return FilterOther
	default:
		return FilterAll
	}
}

func (f MatchFilter) admits(c score.Category) bool {
	switch f {
	case FilterFederation:
		return c == score.CategoryFederation
	case FilterAbroad:
		return c == score.CategoryAbroad
	case FilterOther:
		return c == score.CategoryOther
	default:
		return true
	}
}

// MatchRow is the render-ready projection of one match.
type MatchRow struct {
	Key        feed.Key
	Home       string
	Away       string
	HomePoints string
	AwayPoints string
	SetsWon    string
	SetNumber  int
	ServeHome  bool
	ServeAway  bool
	Hot        bool
	PlaySide   score.Side
	PlayLabel  string
	FlashHome  bool
	FlashAway  bool
	Category   score.Category
	Live       bool
	Finished   bool
	Status     string
	Focused    bool
	StartEpoch int64
}

// buildRows projects the snapshot into display rows: filtered to the active
// bucket, live matches first, then by start time.
func buildRows(snap state.Snapshot, filter MatchFilter, focus score.Focus, flashedHome, flashedAway map[feed.Key]bool) []MatchRow {
	rows := make([]MatchRow, 0, len(snap.Matches))
	for _, ms := range snap.Matches {
		if !filter.admits(ms.Category) {
			continue
		}
		rows = append(rows, buildRow(ms, focus, flashedHome[ms.Key], flashedAway[ms.Key]))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Live != rows[j].Live {
			return rows[i].Live
		}
		if rows[i].StartEpoch != rows[j].StartEpoch {
			return rows[i].StartEpoch < rows[j].StartEpoch
		}
		return rows[i].Home < rows[j].Home
	})
	return rows
}

func buildRow(ms state.MatchState, focus score.Focus, flashHome, flashAway bool) MatchRow {
	row := MatchRow{
		Key:        ms.Key,
		Home:       ms.Match.HomeName,
		Away:       ms.Match.AwayName,
		HomePoints: formatPoints(ms.Points.Home, ms.HasPoints),
		AwayPoints: formatPoints(ms.Points.Away, ms.HasPoints),
		SetsWon:    fmt.Sprintf("%d-%d", ms.Match.SetsWonHome, ms.Match.SetsWonAway),
		FlashHome:  flashHome,
		FlashAway:  flashAway,
		Category:   ms.Category,
		Live:       ms.Match.IsLive(),
		Finished:   ms.Match.IsFinished(),
		Status:     statusLabel(ms.Match),
		Focused:    focus.Is(ms.Key),
		StartEpoch: ms.Match.StartEpoch,
	}
	if ms.HasPoints {
		row.SetNumber = ms.Points.Set
	}

	if side, ok := ms.Serve.Side(); ok {
		row.ServeHome = side == score.SideHome
		row.ServeAway = side == score.SideAway
		row.Hot = ms.Serve.Hot()
	}

	if ms.Play != nil {
		row.PlaySide = ms.Play.Side
		switch ms.Play.Kind {
		case score.PlayBreakPoint:
			row.PlayLabel = "BREAK POINT"
		case score.PlaySideOut:
			row.PlayLabel = "SIDE-OUT"
		}
	}

	return row
}

// formatPoints renders one side's count. A null slot in an otherwise live
// set renders as a dash rather than zero; zero would read as a real score.
func formatPoints(p *int, hasSet bool) string {
	if !hasSet || p == nil {
		return "–"
	}
	return fmt.Sprintf("%d", *p)
}

func statusLabel(m feed.Match) string {
	if text := strings.TrimSpace(m.StatusText); text != "" {
		return text
	}
	return strings.TrimSpace(m.Status)
}

// flashTracker remembers flash generations across snapshots so a marker
// lights exactly once per increment, however many renders happen in between.
type flashTracker struct {
	home map[feed.Key]uint64
	away map[feed.Key]uint64
}

func newFlashTracker() *flashTracker {
	return &flashTracker{
		home: make(map[feed.Key]uint64),
		away: make(map[feed.Key]uint64),
	}
}

// diff returns the keys whose flash generation moved since the last call and
// records the new generations.
func (t *flashTracker) diff(snap state.Snapshot) (home, away map[feed.Key]bool) {
	home = make(map[feed.Key]bool)
	away = make(map[feed.Key]bool)
	for _, ms := range snap.Matches {
		if gen := ms.FlashHome.Generation(); gen != 0 && gen != t.home[ms.Key] {
			home[ms.Key] = true
			t.home[ms.Key] = gen
		}
		if gen := ms.FlashAway.Generation(); gen != 0 && gen != t.away[ms.Key] {
			away[ms.Key] = true
			t.away[ms.Key] = gen
		}
	}
	return home, away
}
