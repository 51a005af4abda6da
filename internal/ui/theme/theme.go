package theme

import (
	"github.com/charmbracelet/lipgloss"

	"pomo/internal/modules/timer/domain"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")

	Work       = lipgloss.Color("#ff6b6b")
	ShortBreak = lipgloss.Color("#51cf66")
	LongBreak  = lipgloss.Color("#339af0")
	Paused     = lipgloss.Color("#ffd43b")
	Accent     = lipgloss.Color("#e599f7")

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 3)

	Title  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Italic = lipgloss.NewStyle().Foreground(Lavender).Italic(true)
	Hot    = lipgloss.NewStyle().Foreground(Paused).Bold(true)
)

// SessionColor tints a session. Paused wins over the session kind.
func SessionColor(kind domain.SessionKind, paused bool) lipgloss.Color {
	if paused {
		return Paused
	}
	switch kind {
	case domain.SessionShortBreak:
		return ShortBreak
	case domain.SessionLongBreak:
		return LongBreak
	}
	return Work
}
