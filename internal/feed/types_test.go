package feed

import (
	"testing"
	"time"
)

func TestMatchKey_PrefersStableID(t *testing.T) {
	m := Match{ID: " m-17 ", HomeName: "A", AwayName: "B", StartEpoch: 100}
	if m.Key() != Key("m-17") {
		t.Fatalf("Key = %q, want m-17", m.Key())
	}
}

func TestMatchKey_FallsBackToComposite(t *testing.T) {
	m := Match{HomeName: "Viking TIF", AwayName: "KFUM Volda", StartEpoch: 1756090800}
	want := Key("1756090800|Viking TIF|KFUM Volda")
	if m.Key() != want {
		t.Fatalf("Key = %q, want %q", m.Key(), want)
	}

	// Two id-less fixtures at the same time with different names must not collide.
	other := Match{HomeName: "Viking TIF", AwayName: "Randaberg", StartEpoch: 1756090800}
	if other.Key() == m.Key() {
		t.Fatalf("composite keys collided: %q", m.Key())
	}
}

func TestMatchStatusHelpers(t *testing.T) {
	tests := []struct {
		status   string
		live     bool
		finished bool
	}{
		{"live", true, false},
		{" LIVE ", true, false},
		{"finished", false, true},
		{"Finished", false, true},
		{"upcoming", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		m := Match{Status: tt.status}
		if m.IsLive() != tt.live {
			t.Errorf("IsLive(%q) = %v, want %v", tt.status, m.IsLive(), tt.live)
		}
		if m.IsFinished() != tt.finished {
			t.Errorf("IsFinished(%q) = %v, want %v", tt.status, m.IsFinished(), tt.finished)
		}
	}
}

func TestMatchStartTime(t *testing.T) {
	if !(Match{}).StartTime().IsZero() {
		t.Fatalf("StartTime on zero epoch should be zero time")
	}
	m := Match{StartEpoch: 1756090800}
	if !m.StartTime().Equal(time.Unix(1756090800, 0)) {
		t.Fatalf("StartTime = %v, want %v", m.StartTime(), time.Unix(1756090800, 0))
	}
}
