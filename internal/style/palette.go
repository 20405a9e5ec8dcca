package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var hexStop = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// Terminal colours per badge severity.
var (
	SuccessColor = lipgloss.Color("#5FD787")
	InfoColor    = lipgloss.Color("#5FAFFF")
	WarningColor = lipgloss.Color("#FFD787")
	DangerColor  = lipgloss.Color("#FF8787")
)

// AccentColor returns the first colour stop of the background gradient.
func (s MetricStyle) AccentColor() lipgloss.Color {
	if stop := hexStop.FindString(s.Background); stop != "" {
		return lipgloss.Color(stop)
	}
	return lipgloss.Color("#64748b")
}

// Color maps the severity to its terminal colour.
func (s Severity) Color() lipgloss.Color {
	switch s {
	case Success:
		return SuccessColor
	case Warning:
		return WarningColor
	case Danger:
		return DangerColor
	default:
		return InfoColor
	}
}

// BadgeStyle renders a severity as a bold, coloured badge.
func (s Severity) BadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.Color()).
		Bold(true)
}
