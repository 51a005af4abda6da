package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"pomo/internal/modules/timer/domain"
	timerdto "pomo/internal/modules/timer/dto"
	"pomo/internal/platform/clock"
	timerview "pomo/internal/ui/views/timer"
)

// FrameInterval matches the raw loop's frame rate.
const FrameInterval = 100 * time.Millisecond

// ─── ports ───────────────────────────────────────────────────────────────────

// Engine is the session engine the model drives, one step per tick.
type Engine interface {
	Apply(cmd domain.Command, now time.Time) domain.Effect
	Animate()
	Tick(now time.Time) bool
	Complete(now time.Time) domain.SessionKind
	Frame() timerdto.Frame
	Config() domain.TimerConfig
	Summary(now time.Time) timerdto.Summary
}

type notifier interface {
	Alert(sound domain.SoundType)
}

// ─── messages ────────────────────────────────────────────────────────────────

type tickMsg struct{}

type alertDoneMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Pause  key.Binding
	Resume key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Pause:  key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "pause")),
		Resume: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "resume")),
		Skip:   key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "skip")),
		Quit:   key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Resume, k.Skip, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model runs the session engine inside a Bubble Tea program. Alerts run as
// commands so the tick stream is never blocked by a sound.
type Model struct {
	engine   Engine
	clock    clock.Clock
	notifier notifier
	log      zerolog.Logger

	keys   keyMap
	help   help.Model
	width  int
	height int
	done   bool
}

func NewModel(engine Engine, clk clock.Clock, notifier notifier, log zerolog.Logger) Model {
	return Model{
		engine:   engine,
		clock:    clk,
		notifier: notifier,
		log:      log,
		keys:     defaultKeys(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd := m.command(msg)
		if cmd == domain.CommandNone {
			return m, nil
		}
		if effect := m.engine.Apply(cmd, m.clock.Now()); effect != domain.EffectNone {
			m.log.Debug().Stringer("command", cmd).Msg("command applied")
		}
		if cmd == domain.CommandQuit {
			m.done = true
			return m, tea.Quit
		}

	case tickMsg:
		if m.done {
			return m, nil
		}
		m.engine.Animate()
		now := m.clock.Now()
		if !m.engine.Tick(now) {
			return m, tick()
		}
		finished := m.engine.Frame().State.Kind
		next := m.engine.Complete(now)
		m.log.Info().Stringer("finished", finished).Stringer("next", next).Msg("session completed")
		return m, tea.Batch(tick(), m.alertCmd(m.engine.Config().SoundType))

	case alertDoneMsg:
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.done {
		return ""
	}
	frame := m.engine.Frame()
	helpView := m.help.View(m.keys)
	bodyHeight := 0
	if m.height > 0 {
		bodyHeight = max(m.height-lipgloss.Height(helpView), 1)
	}
	body, err := timerview.View(frame, m.width, bodyHeight)
	if err != nil {
		return timerview.TextView(frame) + "\n"
	}
	view := lipgloss.JoinVertical(lipgloss.Center, body, helpView)
	if m.width > 0 && m.height > lipgloss.Height(view) {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return strings.TrimRight(view, "\n")
}

// Summary reports the run so far.
func (m Model) Summary() timerdto.Summary {
	return m.engine.Summary(m.clock.Now())
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) command(msg tea.KeyMsg) domain.Command {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return domain.CommandQuit
	case key.Matches(msg, m.keys.Pause):
		return domain.CommandPause
	case key.Matches(msg, m.keys.Resume):
		return domain.CommandResume
	case key.Matches(msg, m.keys.Skip):
		return domain.CommandSkip
	}
	return domain.CommandNone
}

func (m Model) alertCmd(sound domain.SoundType) tea.Cmd {
	return func() tea.Msg {
		if m.notifier != nil {
			m.notifier.Alert(sound)
		}
		return alertDoneMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg { return tickMsg{} })
}
