package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	divider     = strings.Repeat("─", 54)
	indentStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// renderPage frames body between the page title and the footer hints. An
// empty body is drawn as a dash.
func renderPage(title, body, footer string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	rows := []string{
		titleStyle.Render(title),
		indentStyle.Render(divider),
		"",
		indentStyle.Render(body),
		"",
		indentStyle.Render(divider),
	}
	if strings.TrimSpace(footer) != "" {
		rows = append(rows, indentStyle.Render(footer))
	}
	rows = append(rows, indentStyle.Render(hints(keys.interrupt)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max terminal cells, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:min(max, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// padRight pads v with spaces to width terminal cells.
func padRight(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}
