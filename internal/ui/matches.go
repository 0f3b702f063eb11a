package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderMatches renders the match list as a column of cards.
func (m Model) renderMatches() string {
	rows := m.visibleRows()
	styles := m.theme.Styles()

	if len(rows) == 0 {
		empty := "No matches in this bucket."
		if m.filterMode == FilterAll {
			empty = "No matches in the feed."
		}
		return styles.MutedText.Padding(1, 2).Render(empty)
	}

	cards := make([]string, 0, len(rows))
	for i, row := range rows {
		cards = append(cards, m.renderCard(row, i == m.selectedRow))
	}
	return strings.Join(cards, "\n")
}

// renderCard renders one match as a bordered card: a status line and one
// line per side.
func (m Model) renderCard(row MatchRow, selected bool) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderCardStatus(row, styles))
	b.WriteString("\n")
	b.WriteString(m.renderSide(row.Home, row.HomePoints, row.ServeHome, row.FlashHome, row, styles))
	b.WriteString("\n")
	b.WriteString(m.renderSide(row.Away, row.AwayPoints, row.ServeAway, row.FlashAway, row, styles))

	if row.PlayLabel != "" {
		b.WriteString("\n")
		b.WriteString(m.renderPlay(row, styles))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.SurfaceAlt)).
		Padding(0, 1)
	if selected {
		border = border.BorderForeground(lipgloss.Color(m.theme.Accent))
	}
	if row.Focused {
		border = border.BorderForeground(lipgloss.Color(m.theme.Warning))
	}

	width := m.width - 2
	if width > 72 {
		width = 72
	}
	if width > 0 {
		border = border.Width(width)
	}
	return border.Render(b.String())
}

// renderCardStatus renders the card's first line: classification badge,
// live/finished state, set counter and start time.
func (m Model) renderCardStatus(row MatchRow, styles Styles) string {
	parts := []string{styles.CategoryStyle(string(row.Category)).Render(strings.ToUpper(string(row.Category)))}

	switch {
	case row.Live:
		parts = append(parts, styles.SuccessText.Render("LIVE"))
		if row.SetNumber > 0 {
			parts = append(parts, styles.MutedText.Render(fmt.Sprintf("Set %d", row.SetNumber)))
		}
	case row.Finished:
		parts = append(parts, styles.FaintText.Render("FINISHED"))
	default:
		if row.StartEpoch > 0 {
			start := time.Unix(row.StartEpoch, 0)
			parts = append(parts, styles.MutedText.Render(start.Format("Mon 15:04")))
		}
	}

	parts = append(parts, styles.MutedText.Render("Sets "+row.SetsWon))

	if row.Status != "" && !row.Live {
		parts = append(parts, styles.FaintText.Render(truncate(row.Status, 24)))
	}
	if row.Focused {
		parts = append(parts, styles.WarningText.Render("★ FOCUSED"))
	}

	return strings.Join(parts, "  ")
}

// renderSide renders one team line: serve marker, name, points.
func (m Model) renderSide(name, points string, serving, flashed bool, row MatchRow, styles Styles) string {
	marker := "  "
	if serving {
		marker = "● "
		if row.Hot {
			marker = "◉ "
		}
	}

	nameStyle := styles.Text
	pointStyle := styles.Text.Bold(true)
	if row.Finished {
		nameStyle = styles.FaintText
		pointStyle = styles.FaintText
	}
	if flashed {
		pointStyle = styles.Flash
	}

	markerStyle := styles.AccentText
	if row.Hot && serving {
		markerStyle = styles.WarningText
	}

	nameWidth := 28
	line := markerStyle.Render(marker) +
		nameStyle.Width(nameWidth).Render(truncate(name, nameWidth)) +
		pointStyle.Render(fmt.Sprintf("%4s", points))
	return line
}

// renderPlay renders the rally label line under the scoring side.
func (m Model) renderPlay(row MatchRow, styles Styles) string {
	label := row.PlayLabel
	style := styles.InfoText
	if label == "BREAK POINT" {
		style = styles.WarningText.Bold(true)
	}
	side := string(row.PlaySide)
	return "  " + style.Render(label) + " " + styles.FaintText.Render(side)
}
