package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/kittygram-client/internal/palette"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D70000"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#D78700"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AF00"))
	disabledStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// swatch renders label on a block of the given colour, picking black or white
// text by background brightness.
func swatch(hex, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(palette.Foreground(hex))).
		Padding(0, 1).
		Render(label)
}

// colorHex returns the hex to paint for a colour as stored on a record: a
// palette identifier or a raw hex value the server accepted.
func colorHex(value string) string {
	if palette.IsName(value) {
		return palette.NameToHex(value)
	}
	hex := palette.NormalizeHex(value)
	if len(hex) == 7 && strings.HasPrefix(hex, "#") {
		return hex
	}
	return palette.Default().Hex
}

// colorSwatch renders a record colour labelled with its identifier.
func colorSwatch(value string) string {
	label := strings.TrimSpace(value)
	if label == "" {
		label = palette.Default().Name
	}
	return swatch(colorHex(value), label)
}
