package timer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"pomo/internal/modules/timer/domain"
	timerdto "pomo/internal/modules/timer/dto"
	"pomo/internal/ui/theme"
)

var (
	frameStyle = theme.Panel.BorderForeground(theme.Accent).Padding(1, 4)
	strong     = lipgloss.NewStyle().Bold(true)
)

var soundIcons = map[domain.SoundType]string{
	domain.SoundBell:   "🔔",
	domain.SoundChime:  "🎵",
	domain.SoundGong:   "🎶",
	domain.SoundArcade: "🕹️",
	domain.SoundGentle: "🔕",
}

// Splash is the startup panel listing the run's settings.
func Splash(cfg domain.TimerConfig) string {
	dot := func(c lipgloss.Color) string { return lipgloss.NewStyle().Foreground(c).Render("●") }
	icon, ok := soundIcons[cfg.SoundType]
	if !ok {
		icon = soundIcons[domain.SoundBell]
	}
	lines := []string{
		theme.Title.Render("🍅 POMODORO TIMER"),
		"",
		fmt.Sprintf("%s Focus: %s min", dot(theme.Work), strong.Render(fmt.Sprint(cfg.WorkMinutes))),
		fmt.Sprintf("%s Short break: %s min", dot(theme.ShortBreak), strong.Render(fmt.Sprint(cfg.ShortBreakMinutes))),
		fmt.Sprintf("%s Long break: %s min", dot(theme.LongBreak), strong.Render(fmt.Sprint(cfg.LongBreakMinutes))),
		fmt.Sprintf("%s Sound: %s", icon, strong.Render(string(cfg.SoundType))),
	}
	if cfg.AmbientMode != domain.AmbientNone && cfg.AmbientMode != "" {
		ambientIcon := "✨"
		if cfg.AmbientMode == domain.AmbientRain {
			ambientIcon = "🌧️"
		}
		lines = append(lines, fmt.Sprintf("%s Ambient: %s", ambientIcon, strong.Render(string(cfg.AmbientMode))))
	}
	lines = append(lines, "", theme.Muted.Render("Starting in a moment..."))
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Summary is the panel printed after the run ends.
func Summary(summary timerdto.Summary) string {
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Session Complete!"),
		"",
		"🍅 Pomodoros completed: " + strong.Render(fmt.Sprint(summary.CompletedPomodoros)),
		"⏱️  Total focus time: " + strong.Render(FormatDuration(summary.TotalFocusMinutes)),
		theme.Muted.Render("Time at the desk: " + FormatDuration(int(summary.Elapsed.Minutes()))),
		"",
		theme.Muted.Render("Great work! See you next time."),
	))
}
