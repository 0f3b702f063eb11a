package score

import (
	"testing"

	"github.com/ronesse/volley-score-v2/internal/roster"
)

func testRoster() map[int64]roster.Team {
	return roster.ByForeignID([]roster.Team{
		{ID: 1, ForeignID: 501, Name: "Viking TIF", Country: "Norge"},
		{ID: 2, ForeignID: 614, Name: "KFUM Volda", Country: "Norge"},
		{ID: 3, ForeignID: 888, Name: "Berlin RV", Country: "Tyskland"},
	})
}

func TestClassify(t *testing.T) {
	index := testRoster()

	tests := []struct {
		name       string
		home, away int64
		want       Category
	}{
		{"both federation teams", 501, 614, CategoryFederation},
		{"federation team vs unresolved opponent", 501, 999, CategoryFederation},
		{"unresolved home, federation away", 999, 614, CategoryFederation},
		{"resolved foreign-country team vs unresolved", 888, 999, CategoryAbroad},
		{"federation country beats abroad when both resolve", 888, 501, CategoryFederation},
		{"both unresolved", 777, 999, CategoryOther},
		{"zero ids", 0, 0, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.home, tt.away, index, "Norge")
			if got != tt.want {
				t.Errorf("Classify(%d, %d) = %q, want %q", tt.home, tt.away, got, tt.want)
			}
		})
	}
}

func TestClassify_Pure(t *testing.T) {
	index := testRoster()
	first := Classify(501, 999, index, "Norge")
	for i := 0; i < 3; i++ {
		if got := Classify(501, 999, index, "Norge"); got != first {
			t.Fatalf("Classify not deterministic: %q then %q", first, got)
		}
	}
}

func TestClassify_CountryComparisonIsForgiving(t *testing.T) {
	index := roster.ByForeignID([]roster.Team{
		{ForeignID: 501, Country: " norge "},
	})
	if got := Classify(501, 0, index, "Norge"); got != CategoryFederation {
		t.Fatalf("Classify = %q, want federation for case/space variants", got)
	}
}

func TestClassify_EmptyRosterDegradesToOther(t *testing.T) {
	if got := Classify(501, 614, nil, "Norge"); got != CategoryOther {
		t.Fatalf("Classify with nil roster = %q, want other", got)
	}
	if got := Classify(501, 614, map[int64]roster.Team{}, "Norge"); got != CategoryOther {
		t.Fatalf("Classify with empty roster = %q, want other", got)
	}
}
