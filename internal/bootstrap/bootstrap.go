package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	contentinadapter "pomo/internal/modules/content/adapter/in"
	contentoutadapter "pomo/internal/modules/content/adapter/out"
	contentdto "pomo/internal/modules/content/dto"
	contentout "pomo/internal/modules/content/port/out"
	contentservice "pomo/internal/modules/content/service"
	contentusecase "pomo/internal/modules/content/usecase"
	timerinadapter "pomo/internal/modules/timer/adapter/in"
	timeroutadapter "pomo/internal/modules/timer/adapter/out"
	"pomo/internal/modules/timer/domain"
	timerdto "pomo/internal/modules/timer/dto"
	timerservice "pomo/internal/modules/timer/service"
	timerusecase "pomo/internal/modules/timer/usecase"
	"pomo/internal/platform/clock"
	"pomo/internal/platform/config"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/logging"
	"pomo/internal/platform/rng"
	uiapp "pomo/internal/ui/app"
)

const (
	UILoop = "loop"
	UITea  = "tea"
)

type App struct {
	Config     config.Config
	Timer      domain.TimerConfig
	Log        *logging.Logger
	ContentCLI contentinadapter.CLIHandler
	Quotes     contentdto.QuotesOutput

	clock clock.Clock
	rnd   rng.Source
}

// TimerConfig converts and validates the user-facing settings.
func TimerConfig(cfg config.Config) (domain.TimerConfig, error) {
	ambient, err := domain.ParseAmbientMode(cfg.AmbientMode)
	if err != nil {
		return domain.TimerConfig{}, err
	}
	sound, err := domain.ParseSoundType(cfg.SoundType)
	if err != nil {
		return domain.TimerConfig{}, err
	}
	timerCfg := domain.TimerConfig{
		WorkMinutes:             cfg.WorkMinutes,
		ShortBreakMinutes:       cfg.ShortBreakMinutes,
		LongBreakMinutes:        cfg.LongBreakMinutes,
		PomodorosUntilLongBreak: cfg.PomodorosUntilLongBreak,
		AmbientMode:             ambient,
		SoundType:               sound,
		QuotesFile:              strings.TrimSpace(cfg.QuotesFile),
	}
	if err := timerCfg.Validate(); err != nil {
		return domain.TimerConfig{}, err
	}
	return timerCfg, nil
}

// Validate checks every user-facing setting and returns the timer part.
func Validate(cfg config.Config) (domain.TimerConfig, error) {
	timerCfg, err := TimerConfig(cfg)
	if err != nil {
		return domain.TimerConfig{}, err
	}
	switch cfg.UI {
	case "", UILoop, UITea:
	default:
		return domain.TimerConfig{}, fmt.Errorf("%w: ui %q (want loop or tea)", apperrors.ErrInvalidInput, cfg.UI)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return domain.TimerConfig{}, err
	}
	return timerCfg, nil
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	timerCfg, err := Validate(cfg)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	rnd := rng.NewTimeSeeded()
	var source contentout.QuoteSource
	if timerCfg.QuotesFile != "" {
		source = contentoutadapter.NewFileQuoteSource(timerCfg.QuotesFile)
	}
	contentUC := contentusecase.NewInteractor(contentservice.NewContentService(rnd), source, log.Logger)
	contentCLI := contentinadapter.NewCLIHandler(contentUC)

	return &App{
		Config:     cfg,
		Timer:      timerCfg,
		Log:        log,
		ContentCLI: contentCLI,
		Quotes:     contentCLI.Load(ctx),
		clock:      clock.SystemClock{},
		rnd:        rnd,
	}, nil
}

func (a *App) Close() error {
	return a.Log.Close()
}

// Run starts the frontend selected in the configuration.
func (a *App) Run(ctx context.Context, stdin, stdout *os.File) (timerdto.Summary, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if a.Config.UI == UITea {
		return a.RunTUI(ctx, stdin, stdout)
	}
	return a.RunLoop(ctx, stdin, stdout)
}

// RunLoop drives the timer with the raw-terminal frame loop. The terminal
// is restored on every exit path.
func (a *App) RunLoop(ctx context.Context, stdin, stdout *os.File) (timerdto.Summary, error) {
	poller, err := timeroutadapter.OpenTerminalPoller(stdin)
	if err != nil {
		return timerdto.Summary{}, err
	}
	defer func() {
		if closeErr := poller.Close(); closeErr != nil {
			a.Log.Warn().Err(closeErr).Msg("close key poller")
		}
	}()

	screen := timeroutadapter.NewScreenRenderer(stdout, timeroutadapter.TerminalSize(stdout))
	screen.Start()
	defer screen.Stop()

	svc := timerservice.NewTimerService(a.Timer, a.ContentCLI, a.rnd, a.clock.Now())
	uc := timerusecase.NewInteractor(
		svc,
		a.clock,
		poller,
		screen,
		timeroutadapter.NewBellNotifier(stdout, a.clock, a.Log.Logger),
		timerusecase.Options{
			Fallback: timeroutadapter.NewTextRenderer(stdout),
			Logger:   a.Log.Logger,
		},
	)
	return timerinadapter.NewCLIHandler(uc).Run(ctx)
}

// RunTUI drives the same engine from a Bubble Tea program.
func (a *App) RunTUI(ctx context.Context, stdin, stdout *os.File) (timerdto.Summary, error) {
	if !term.IsTerminal(int(stdin.Fd())) {
		return timerdto.Summary{}, fmt.Errorf("start tea ui: %w", apperrors.ErrNotTerminal)
	}
	svc := timerservice.NewTimerService(a.Timer, a.ContentCLI, a.rnd, a.clock.Now())
	model := uiapp.NewModel(svc, a.clock, timeroutadapter.NewBellNotifier(stdout, a.clock, a.Log.Logger), a.Log.Logger)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)
	final, err := program.Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return svc.Summary(a.clock.Now()), fmt.Errorf("run tea ui: %w", err)
	}
	if finalModel, ok := final.(uiapp.Model); ok {
		return finalModel.Summary(), nil
	}
	return svc.Summary(a.clock.Now()), nil
}
