package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomo/internal/modules/timer/domain"
	timerdto "pomo/internal/modules/timer/dto"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/ui/theme"
)

const (
	barWidth        = 40
	ambientTopRows  = 2
	ambientRowsUsed = 4
)

var (
	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Faint(true)
	rainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dabf7")).Faint(true)
	starStyle  = lipgloss.NewStyle().Foreground(theme.Paused).Faint(true)
)

// View renders a frame as the full timer panel. A panel wider or taller
// than a positive width or height yields ErrTerminalTooSmall; zero or less
// skips that dimension.
func View(frame timerdto.Frame, width, height int) (string, error) {
	state := frame.State
	color := theme.SessionColor(state.Kind, false)
	bold := lipgloss.NewStyle().Foreground(color).Bold(true)

	var lines []string
	top, bottom := ambientLines(frame)
	lines = append(lines, top...)
	lines = append(lines,
		theme.Title.Render("🍅 POMODORO"),
		"",
		bold.Render(BigText(FormatClock(state.RemainingSeconds))),
		"",
		progressLine(frame, bold),
		"",
		statusLine(frame, bold),
		"",
		indicators(frame.Config.PomodorosUntilLongBreak, state.PomodorosSinceLongBreak),
	)
	if frame.Quote != "" {
		lines = append(lines, "", wrapped(theme.Italic.Faint(true)).Render(frame.Quote))
	}
	if state.Kind.IsBreak() && frame.Activity != "" {
		lines = append(lines, "", wrapped(lipgloss.NewStyle().Foreground(theme.ShortBreak).Italic(true)).Render(frame.Activity))
	}
	lines = append(lines,
		"",
		theme.Muted.Render(StatsLine(state.CompletedPomodoros, state.TotalFocusMinutes)),
	)
	lines = append(lines, bottom...)
	lines = append(lines, "", theme.Muted.Render(controls(state.Paused)))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	panel := theme.Panel.BorderForeground(theme.SessionColor(state.Kind, state.Paused)).Render(body)
	if width > 0 && lipgloss.Width(panel) > width {
		return "", fmt.Errorf("panel needs %d columns, have %d: %w", lipgloss.Width(panel), width, apperrors.ErrTerminalTooSmall)
	}
	if height > 0 && lipgloss.Height(panel) > height {
		return "", fmt.Errorf("panel needs %d rows, have %d: %w", lipgloss.Height(panel), height, apperrors.ErrTerminalTooSmall)
	}
	return panel, nil
}

// TextView is the single-line fallback used when the panel does not fit.
func TextView(frame timerdto.Frame) string {
	state := frame.State
	status := SessionName(state.Kind)
	if state.Paused {
		status += " (paused)"
	}
	return fmt.Sprintf("%s %s  %5.1f%%  %d/%d  |  %s",
		status,
		FormatClock(state.RemainingSeconds),
		state.Progress()*100,
		state.PomodorosSinceLongBreak,
		frame.Config.PomodorosUntilLongBreak,
		controls(state.Paused),
	)
}

// FormatClock renders seconds as MM:SS. Minutes are not capped at 59.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatDuration renders minutes as 45m, 2h or 1h 30m.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours, rest := minutes/60, minutes%60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}

func StatsLine(completed, focusMinutes int) string {
	return fmt.Sprintf("Today: %d 🍅  •  %s focused", completed, FormatDuration(focusMinutes))
}

func SessionName(kind domain.SessionKind) string {
	switch kind {
	case domain.SessionShortBreak:
		return "SHORT BREAK"
	case domain.SessionLongBreak:
		return "LONG BREAK"
	}
	return "FOCUS TIME"
}

func sessionEmoji(kind domain.SessionKind) string {
	switch kind {
	case domain.SessionShortBreak:
		return "☕"
	case domain.SessionLongBreak:
		return "🌴"
	}
	return "🎯"
}

// ProgressBar draws the track with the mover at the front of the filled
// part: a train during work, a unicorn during breaks.
func ProgressBar(kind domain.SessionKind, progress float64, animationFrame int) (filled, mover, empty string) {
	mover = "🚂🚃"
	track, rest := "═", "─"
	if kind.IsBreak() {
		mover = "🦄" + [2]string{"✨", "🌟"}[animationFrame%2]
		track, rest = "~", "·"
	}
	cells := int(float64(barWidth) * progress)
	switch {
	case cells <= 0:
		return "", mover, strings.Repeat(rest, barWidth)
	case cells >= barWidth:
		return strings.Repeat(track, barWidth-1), mover, ""
	default:
		return strings.Repeat(track, cells-1), mover, strings.Repeat(rest, barWidth-cells)
	}
}

func progressLine(frame timerdto.Frame, bold lipgloss.Style) string {
	progress := frame.State.Progress()
	filled, mover, empty := ProgressBar(frame.State.Kind, progress, frame.AnimationFrame)
	return bold.UnsetBold().Render(filled) + mover + trackStyle.Render(empty) +
		"  " + bold.Render(fmt.Sprintf("%5.1f%%", progress*100))
}

func statusLine(frame timerdto.Frame, bold lipgloss.Style) string {
	if frame.State.Paused {
		pulse := [2]string{"⏸ ", " ⏸"}[frame.AnimationFrame%2]
		return theme.Hot.Render(pulse + " PAUSED")
	}
	kind := frame.State.Kind
	return bold.Render(sessionEmoji(kind) + "  " + SessionName(kind))
}

func indicators(total, filled int) string {
	marks := make([]string, total)
	for i := range marks {
		if i < filled {
			marks[i] = lipgloss.NewStyle().Foreground(theme.Work).Render("●")
		} else {
			marks[i] = theme.Muted.Render("○")
		}
	}
	return strings.Join(marks, " ")
}

// wrapped keeps long text within the ambient field's width.
func wrapped(style lipgloss.Style) lipgloss.Style {
	return style.Width(domain.AmbientWidth).Align(lipgloss.Center)
}

func controls(paused bool) string {
	if paused {
		return "R resume   S skip   Q quit"
	}
	return "P pause   S skip   Q quit"
}

func ambientLines(frame timerdto.Frame) (top, bottom []string) {
	rows := frame.Ambient
	if len(rows) < ambientRowsUsed {
		return nil, nil
	}
	style := starStyle
	if frame.Config.AmbientMode == domain.AmbientRain {
		style = rainStyle
	}
	for i := 0; i < ambientRowsUsed; i++ {
		line := style.Render(rows[i])
		if i < ambientTopRows {
			top = append(top, line)
		} else {
			bottom = append(bottom, line)
		}
	}
	return top, bottom
}
