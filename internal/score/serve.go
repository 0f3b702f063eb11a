package score

// Side identifies one side of the net.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// Serve is the reconstructed serve possession for one match. It is a tagged
// variant: either unknown, or a side with a hot flag. The fields are
// unexported so hot-without-side cannot be built; the zero value is Unknown.
type Serve struct {
	side  Side
	hot   bool
	known bool
}

// Unknown returns the initial serve state.
func Unknown() Serve {
	return Serve{}
}

// Serving returns a known serve state for the given side.
func Serving(side Side, hot bool) Serve {
	return Serve{side: side, hot: hot, known: true}
}

// Side returns the serving side; ok is false while possession is unknown.
func (s Serve) Side() (Side, bool) {
	return s.side, s.known
}

// Hot reports whether the serving side won the last rally on their own serve.
func (s Serve) Hot() bool {
	return s.known && s.hot
}

// PlayKind labels how the most recent rally ended.
type PlayKind string

const (
	// PlayBreakPoint: the serving side won the rally, extending their streak.
	PlayBreakPoint PlayKind = "break-point"
	// PlaySideOut: the receiving side won the rally and takes over serve.
	PlaySideOut PlayKind = "side-out"
)

// Play is the transient label for the latest rally. It is recomputed from
// scratch every poll and never carried across cycles.
type Play struct {
	Side Side
	Kind PlayKind
}

// Advance applies one reconciliation delta to the serve state. scorer is the
// side whose point count increased this cycle; scored is false when neither
// side scored, in which case the state passes through untouched.
//
// Volleyball's rally-point rule makes this exact, not heuristic: the winner
// of a rally serves next, so "same side scores again" is precisely a serve
// streak and "the other side scores" is precisely a change of possession.
// The first observed point only establishes a baseline and emits no label.
func Advance(prior Serve, scorer Side, scored bool) (Serve, *Play) {
	if !scored {
		return prior, nil
	}
	side, known := prior.Side()
	switch {
	case !known:
		return Serving(scorer, false), nil
	case side == scorer:
		return Serving(scorer, true), &Play{Side: scorer, Kind: PlayBreakPoint}
	default:
		return Serving(scorer, false), &Play{Side: scorer, Kind: PlaySideOut}
	}
}
