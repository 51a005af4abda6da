package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"pomo/internal/modules/timer/domain"
	timerdto "pomo/internal/modules/timer/dto"
	timerin "pomo/internal/modules/timer/port/in"
	timerout "pomo/internal/modules/timer/port/out"
	"pomo/internal/modules/timer/service"
	"pomo/internal/platform/clock"
)

// DefaultFrameInterval gives roughly ten frames per second.
const DefaultFrameInterval = 100 * time.Millisecond

type Options struct {
	FrameInterval time.Duration
	// Fallback draws frames when the main renderer fails.
	Fallback timerout.Renderer
	Logger   zerolog.Logger
}

// Interactor is the run loop. Polling, the countdown and rendering all happen
// on the calling goroutine, one iteration per frame.
type Interactor struct {
	svc      *service.TimerService
	clock    clock.Clock
	poller   timerout.KeyPoller
	renderer timerout.Renderer
	notifier timerout.Notifier
	opts     Options
	degraded bool
}

func NewInteractor(
	svc *service.TimerService,
	clk clock.Clock,
	poller timerout.KeyPoller,
	renderer timerout.Renderer,
	notifier timerout.Notifier,
	opts Options,
) timerin.Usecase {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	return &Interactor{
		svc:      svc,
		clock:    clk,
		poller:   poller,
		renderer: renderer,
		notifier: notifier,
		opts:     opts,
	}
}

// Run loops until quit, context cancellation, or a poll or render failure.
// Cancellation is a normal exit and returns no error.
func (i *Interactor) Run(ctx context.Context) (timerdto.Summary, error) {
	log := i.opts.Logger
	log.Info().
		Int("work_minutes", i.svc.Config().WorkMinutes).
		Int("short_break_minutes", i.svc.Config().ShortBreakMinutes).
		Int("long_break_minutes", i.svc.Config().LongBreakMinutes).
		Int("pomodoros_until_long_break", i.svc.Config().PomodorosUntilLongBreak).
		Msg("timer started")

	for {
		if ctx.Err() != nil {
			log.Info().Msg("timer interrupted")
			return i.svc.Summary(i.clock.Now()), nil
		}
		frameStart := i.clock.Now()

		cmd, err := i.poller.Poll()
		if err != nil {
			return i.svc.Summary(i.clock.Now()), fmt.Errorf("poll input: %w", err)
		}
		if effect := i.svc.Apply(cmd, frameStart); effect != domain.EffectNone {
			state := i.svc.State()
			log.Debug().
				Stringer("command", cmd).
				Stringer("kind", state.Kind).
				Int("remaining_seconds", state.RemainingSeconds).
				Msg("command applied")
		}
		if i.svc.State().Quit {
			log.Info().Msg("timer quit")
			return i.svc.Summary(i.clock.Now()), nil
		}

		i.svc.Animate()
		if err := i.render(); err != nil {
			return i.svc.Summary(i.clock.Now()), err
		}

		if i.svc.Tick(i.clock.Now()) {
			finished := i.svc.State()
			i.notifier.Alert(i.svc.Config().SoundType)
			next := i.svc.Complete(i.clock.Now())
			log.Info().
				Stringer("finished", finished.Kind).
				Stringer("next", next).
				Int("completed_pomodoros", i.svc.State().CompletedPomodoros).
				Msg("session completed")
		}

		wait := i.opts.FrameInterval - i.clock.Now().Sub(frameStart)
		if err := i.clock.Sleep(ctx, wait); err != nil {
			log.Info().Msg("timer interrupted")
			return i.svc.Summary(i.clock.Now()), nil
		}
	}
}

func (i *Interactor) render() error {
	frame := i.svc.Frame()
	err := i.renderer.Render(frame)
	if err == nil {
		if i.degraded {
			i.opts.Logger.Info().Msg("renderer recovered")
			i.degraded = false
		}
		return nil
	}
	if !i.degraded {
		i.opts.Logger.Warn().Err(err).Msg("render failed, falling back to text")
		i.degraded = true
	}
	if i.opts.Fallback == nil {
		return nil
	}
	if fallbackErr := i.opts.Fallback.Render(frame); fallbackErr != nil {
		return fmt.Errorf("render frame: %w", errors.Join(err, fallbackErr))
	}
	return nil
}
