package score

import "testing"

func TestAdvance_TransitionTable(t *testing.T) {
	tests := []struct {
		name     string
		prior    Serve
		scorer   Side
		scored   bool
		want     Serve
		wantPlay *Play
	}{
		{
			name:   "unknown no score stays unknown",
			prior:  Unknown(),
			scored: false,
			want:   Unknown(),
		},
		{
			name:   "first score is baseline without label",
			prior:  Unknown(),
			scorer: SideHome,
			scored: true,
			want:   Serving(SideHome, false),
		},
		{
			name:     "same side scoring again turns hot with break point",
			prior:    Serving(SideHome, false),
			scorer:   SideHome,
			scored:   true,
			want:     Serving(SideHome, true),
			wantPlay: &Play{Side: SideHome, Kind: PlayBreakPoint},
		},
		{
			name:     "hot side scoring stays hot with break point",
			prior:    Serving(SideHome, true),
			scorer:   SideHome,
			scored:   true,
			want:     Serving(SideHome, true),
			wantPlay: &Play{Side: SideHome, Kind: PlayBreakPoint},
		},
		{
			name:     "other side scoring takes serve cold with side-out",
			prior:    Serving(SideHome, false),
			scorer:   SideAway,
			scored:   true,
			want:     Serving(SideAway, false),
			wantPlay: &Play{Side: SideAway, Kind: PlaySideOut},
		},
		{
			name:     "other side scoring against hot server also side-out",
			prior:    Serving(SideHome, true),
			scorer:   SideAway,
			scored:   true,
			want:     Serving(SideAway, false),
			wantPlay: &Play{Side: SideAway, Kind: PlaySideOut},
		},
		{
			name:   "no score leaves known state untouched",
			prior:  Serving(SideAway, true),
			scored: false,
			want:   Serving(SideAway, true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, play := Advance(tt.prior, tt.scorer, tt.scored)
			if got != tt.want {
				t.Errorf("Advance state = %#v, want %#v", got, tt.want)
			}
			if (play == nil) != (tt.wantPlay == nil) {
				t.Fatalf("Advance play = %#v, want %#v", play, tt.wantPlay)
			}
			if play != nil && *play != *tt.wantPlay {
				t.Errorf("Advance play = %#v, want %#v", *play, *tt.wantPlay)
			}
		})
	}
}

func TestAdvance_Idempotent(t *testing.T) {
	// Repeated polls with no change must leave the state exactly as it was.
	state := Serving(SideHome, true)
	for i := 0; i < 5; i++ {
		next, play := Advance(state, "", false)
		if next != state || play != nil {
			t.Fatalf("poll %d changed state: %#v play %#v", i, next, play)
		}
		state = next
	}
}

func TestServe_TaggedVariant(t *testing.T) {
	var zero Serve
	if _, known := zero.Side(); known {
		t.Fatalf("zero Serve should be unknown")
	}
	if zero.Hot() {
		t.Fatalf("unknown Serve can never be hot")
	}

	s := Serving(SideAway, true)
	side, known := s.Side()
	if !known || side != SideAway || !s.Hot() {
		t.Fatalf("Serving(away, hot) = %#v", s)
	}
}

func TestSide_Other(t *testing.T) {
	if SideHome.Other() != SideAway || SideAway.Other() != SideHome {
		t.Fatalf("Other() should flip sides")
	}
}
