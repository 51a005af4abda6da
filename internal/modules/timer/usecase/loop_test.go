package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomo/internal/modules/timer/domain"
	timerdto "pomo/internal/modules/timer/dto"
	"pomo/internal/modules/timer/service"
	"pomo/internal/modules/timer/usecase"
)

type fakeClock struct {
	now time.Time
	// cancel fires once the clock has slept past limit.
	limit  time.Duration
	start  time.Time
	cancel context.CancelFunc
}

func newFakeClock() *fakeClock {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &fakeClock{now: start, start: start}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		c.now = c.now.Add(d)
	}
	if c.cancel != nil && c.now.Sub(c.start) >= c.limit {
		c.cancel()
		return context.Canceled
	}
	return nil
}

// scriptedPoller hands out commands by frame number.
type scriptedPoller struct {
	frame  int
	script map[int]domain.Command
	err    error
}

func (p *scriptedPoller) Poll() (domain.Command, error) {
	p.frame++
	if p.err != nil {
		return domain.CommandNone, p.err
	}
	return p.script[p.frame], nil
}

type recordingRenderer struct {
	frames []timerdto.Frame
	err    error
}

func (r *recordingRenderer) Render(frame timerdto.Frame) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, frame)
	return nil
}

type recordingNotifier struct {
	sounds []domain.SoundType
}

func (n *recordingNotifier) Alert(sound domain.SoundType) {
	n.sounds = append(n.sounds, sound)
}

func testConfig(workMinutes int) domain.TimerConfig {
	return domain.TimerConfig{
		WorkMinutes:             workMinutes,
		ShortBreakMinutes:       1,
		LongBreakMinutes:        2,
		PomodorosUntilLongBreak: 4,
		AmbientMode:             domain.AmbientNone,
		SoundType:               domain.SoundChime,
	}
}

type harness struct {
	clock    *fakeClock
	poller   *scriptedPoller
	renderer *recordingRenderer
	fallback *recordingRenderer
	notifier *recordingNotifier
	svc      *service.TimerService
}

func newHarness(script map[int]domain.Command) *harness {
	return &harness{
		clock:    newFakeClock(),
		poller:   &scriptedPoller{script: script},
		renderer: &recordingRenderer{},
		fallback: &recordingRenderer{},
		notifier: &recordingNotifier{},
	}
}

func (h *harness) run(t *testing.T, ctx context.Context, cfg domain.TimerConfig) (timerdto.Summary, error) {
	t.Helper()
	h.svc = service.NewTimerService(cfg, nil, domain.Random(nil), h.clock.Now())
	uc := usecase.NewInteractor(h.svc, h.clock, h.poller, h.renderer, h.notifier, usecase.Options{
		Fallback: h.fallback,
		Logger:   zerolog.Nop(),
	})
	return uc.Run(ctx)
}

func TestQuitOnFirstFrameLeavesCountdownUntouched(t *testing.T) {
	t.Parallel()
	h := newHarness(map[int]domain.Command{1: domain.CommandQuit})

	summary, err := h.run(t, context.Background(), testConfig(2))
	require.NoError(t, err)
	assert.Empty(t, h.renderer.frames)
	assert.Empty(t, h.notifier.sounds)
	assert.Zero(t, summary.CompletedPomodoros)
	assert.Equal(t, domain.SessionWork, summary.LastKind)

	state := h.svc.State()
	assert.True(t, state.Quit)
	assert.False(t, state.Paused)
	assert.Equal(t, 120, state.RemainingSeconds)
}

func TestRenderedFramesCountDownOncePerSecond(t *testing.T) {
	t.Parallel()
	h := newHarness(map[int]domain.Command{25: domain.CommandQuit})

	_, err := h.run(t, context.Background(), testConfig(2))
	require.NoError(t, err)
	require.Len(t, h.renderer.frames, 24)
	assert.Equal(t, 120, h.renderer.frames[0].State.RemainingSeconds)
	last := h.renderer.frames[len(h.renderer.frames)-1].State
	assert.Equal(t, 118, last.RemainingSeconds)
}

func TestNaturalCompletionAlertsOnceAndAdvances(t *testing.T) {
	t.Parallel()
	h := newHarness(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.clock.cancel = cancel
	h.clock.limit = 61 * time.Second

	summary, err := h.run(t, ctx, testConfig(1))
	require.NoError(t, err)
	assert.Equal(t, []domain.SoundType{domain.SoundChime}, h.notifier.sounds)
	assert.Equal(t, 1, summary.CompletedPomodoros)
	assert.Equal(t, 1, summary.TotalFocusMinutes)
	assert.Equal(t, domain.SessionShortBreak, summary.LastKind)
}

func TestSkipWhilePausedAdvancesWithoutAlert(t *testing.T) {
	t.Parallel()
	h := newHarness(map[int]domain.Command{
		1: domain.CommandPause,
		3: domain.CommandSkip,
		5: domain.CommandQuit,
	})

	summary, err := h.run(t, context.Background(), testConfig(25))
	require.NoError(t, err)
	assert.Empty(t, h.notifier.sounds)
	assert.Zero(t, summary.CompletedPomodoros)
	assert.Equal(t, domain.SessionShortBreak, summary.LastKind)

	last := h.renderer.frames[len(h.renderer.frames)-1].State
	assert.True(t, last.Paused)
	assert.Equal(t, 60, last.RemainingSeconds)
}

func TestRenderFailureFallsBackToText(t *testing.T) {
	t.Parallel()
	h := newHarness(map[int]domain.Command{4: domain.CommandQuit})
	h.renderer.err = errors.New("screen gone")

	_, err := h.run(t, context.Background(), testConfig(25))
	require.NoError(t, err)
	assert.Len(t, h.fallback.frames, 3)
}

func TestRenderFailureWithoutWorkingFallbackIsFatal(t *testing.T) {
	t.Parallel()
	h := newHarness(nil)
	h.renderer.err = errors.New("screen gone")
	h.fallback.err = errors.New("stdout closed")

	_, err := h.run(t, context.Background(), testConfig(25))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen gone")
	assert.Contains(t, err.Error(), "stdout closed")
}

func TestPollErrorStopsTheLoop(t *testing.T) {
	t.Parallel()
	h := newHarness(nil)
	h.poller.err = errors.New("stdin closed")

	_, err := h.run(t, context.Background(), testConfig(25))
	require.Error(t, err)
	assert.ErrorIs(t, err, h.poller.err)
}

func TestCancelledContextIsACleanExit(t *testing.T) {
	t.Parallel()
	h := newHarness(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := h.run(t, ctx, testConfig(25))
	require.NoError(t, err)
	assert.Empty(t, h.renderer.frames)
	assert.Zero(t, summary.Elapsed)
}
