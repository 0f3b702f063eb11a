package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if GetTheme(name).Name != name {
			t.Errorf("GetTheme(%q).Name = %q", name, GetTheme(name).Name)
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("nope"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(nope) = %q, want Nightfox", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	name := themeOrder[0]
	seen := map[string]bool{}
	for i := 0; i < len(themeOrder); i++ {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Fatalf("NextTheme cycle did not wrap, ended at %q", name)
	}
	if len(seen) != len(themeOrder) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themeOrder))
	}
	if got := NextTheme("unknown"); got != themeOrder[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, themeOrder[0])
	}
}

func TestCategoryStyle_UnknownUsesMuted(t *testing.T) {
	theme := GetTheme("Slate")
	styles := theme.Styles()
	known := styles.CategoryStyle("federation").GetBackground()
	unknown := styles.CategoryStyle("mystery").GetBackground()
	if known == unknown {
		t.Fatalf("unknown category styled identically to federation")
	}
	if unknown != lipgloss.Color(theme.Muted) {
		t.Fatalf("unknown category background = %v, want muted fallback", unknown)
	}
}
