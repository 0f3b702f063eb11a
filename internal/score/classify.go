package score

import (
	"strings"

	"github.com/ronesse/volley-score-v2/internal/roster"
)

// Category groups a match by its relation to the home federation.
type Category string

const (
	// CategoryFederation: at least one team resolves to a roster record in
	// the federation's own country.
	CategoryFederation Category = "federation"
	// CategoryAbroad: at least one team resolves, but none to the
	// federation's country (federation athletes playing abroad).
	CategoryAbroad Category = "abroad"
	// CategoryOther: neither team resolves against the roster.
	CategoryOther Category = "other"
)

// Classify buckets a match by resolving both foreign team ids against the
// roster. It is a pure function of its inputs and is re-evaluated on every
// poll: the roster refreshes on its own timer, so caching per match would pin
// stale classifications.
//
// Order matters: a resolved team in the federation's country wins outright,
// even when the opponent is unresolved; any other resolution means abroad;
// two unresolved teams mean other. An empty roster therefore yields other
// for everything, which is the required degradation.
func Classify(homeForeignID, awayForeignID int64, byForeign map[int64]roster.Team, country string) Category {
	home, homeOK := byForeign[homeForeignID]
	away, awayOK := byForeign[awayForeignID]

	if homeOK && sameCountry(home.Country, country) {
		return CategoryFederation
	}
	if awayOK && sameCountry(away.Country, country) {
		return CategoryFederation
	}
	if homeOK || awayOK {
		return CategoryAbroad
	}
	return CategoryOther
}

func sameCountry(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
