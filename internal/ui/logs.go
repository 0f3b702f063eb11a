package ui

import (
	"strings"
)

// renderLogs renders the tail of the session log.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	if len(m.logLines) == 0 {
		hint := "No log lines yet."
		if path := m.sessionLogPath(); path != "" {
			hint += "\nSession log: " + truncateMiddle(path, 60)
		}
		return styles.MutedText.Padding(1, 2).Render(hint)
	}

	// Header and command bar take the first rows; show what fits.
	visible := m.height - 3
	if visible < 1 {
		visible = 1
	}
	lines := m.logLines
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, styles.Text.Render(line))
	}
	return strings.Join(out, "\n")
}
