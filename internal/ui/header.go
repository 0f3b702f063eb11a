package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("volley", styles.Logo))

	// Feed reachability
	switch {
	case m.snapshot.IsOffline():
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
		parts = append(parts, bg.Render("Retrying...", styles.WarningText.Bold(true)))
	case m.snapshot.LastError != nil:
		// Single miss: stale data, not yet an outage.
		parts = append(parts, bg.Render("● STALE", styles.WarningText))
	default:
		parts = append(parts, bg.Render("● LIVE", styles.SuccessText))
	}

	// Live match count
	live := 0
	for _, ms := range m.snapshot.Matches {
		if ms.Match.IsLive() {
			live++
		}
	}
	parts = append(parts,
		bg.Render("Live:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", live), styles.Text),
	)
	parts = append(parts,
		bg.Render("Matches:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Matches)), styles.Text),
	)

	// Roster health
	if m.snapshot.RosterError != nil {
		parts = append(parts, bg.Render("ROSTER STALE", styles.WarningText))
	} else if m.snapshot.RosterTeams > 0 {
		parts = append(parts,
			bg.Render("Roster:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.snapshot.RosterTeams), styles.Text),
		)
	}

	// Wake lock indicator
	if m.locks != nil && m.locks.Held() {
		parts = append(parts, bg.Render("AWAKE", styles.InfoText))
	}

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	if m.snapshot.LastError != nil {
		maxErr := 60
		if m.width < 100 {
			maxErr = 30
		}
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText),
		)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, sep))
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.snapshot.LastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.snapshot.LastUpdated)
	timeStr := m.snapshot.LastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"q", "Matches"},
			{"?", "More"},
		}
	default:
		focusLabel := "Focus"
		if _, ok := m.focus.Key(); ok {
			focusLabel = "Unfocus"
		}
		commands = []cmd{
			{"f", m.filterMode.Label()},
			{"Enter", focusLabel},
			{"j/k", "Navigate"},
			{"l", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
