package service

import (
	"time"

	contentdto "pomo/internal/modules/content/dto"
	"pomo/internal/modules/timer/domain"
	"pomo/internal/modules/timer/dto"
)

// framesPerAnimationStep keeps the pause pulse and ambient field at ~500ms
// with a 100ms frame.
const framesPerAnimationStep = 5

// ContentPicker supplies quotes and break activities.
type ContentPicker interface {
	Pick(category contentdto.Category) string
}

// TimerService owns one run: session state, countdown, ambient field and
// the text shown alongside the timer. It is not safe for concurrent use.
type TimerService struct {
	cfg       domain.TimerConfig
	state     domain.State
	countdown domain.Countdown
	ambient   *domain.AmbientField
	rnd       domain.Random
	content   ContentPicker
	startedAt time.Time

	quote          string
	activity       string
	iteration      int
	animationFrame int
}

func NewTimerService(cfg domain.TimerConfig, content ContentPicker, rnd domain.Random, now time.Time) *TimerService {
	svc := &TimerService{
		cfg:       cfg,
		state:     domain.NewState(cfg),
		countdown: domain.NewCountdown(now),
		ambient:   domain.NewAmbientField(cfg.AmbientMode, rnd),
		rnd:       rnd,
		content:   content,
		startedAt: now,
	}
	svc.refreshContent()
	return svc
}

// Apply executes a user command.
func (s *TimerService) Apply(cmd domain.Command, now time.Time) domain.Effect {
	effect := s.state.Apply(cmd, s.cfg)
	switch effect {
	case domain.EffectResumed:
		s.countdown.Rebase(now)
	case domain.EffectSkipped:
		s.countdown.Rebase(now)
		s.refreshContent()
	}
	return effect
}

// Animate counts a rendered frame and steps the animation every fifth one.
func (s *TimerService) Animate() {
	s.iteration++
	if s.iteration%framesPerAnimationStep != 0 {
		return
	}
	s.animationFrame++
	s.ambient.Animate(s.rnd)
}

// Tick applies the one-second countdown rule and reports a natural
// completion. While paused the countdown is held at now.
func (s *TimerService) Tick(now time.Time) bool {
	if s.state.Quit {
		return false
	}
	if s.state.Paused {
		s.countdown.Rebase(now)
		return false
	}
	if !s.countdown.Due(now) {
		return false
	}
	return s.state.Tick()
}

// Complete moves past a naturally finished session.
func (s *TimerService) Complete(now time.Time) domain.SessionKind {
	kind := s.state.Advance(s.cfg, domain.CompletionNatural)
	s.countdown.Rebase(now)
	s.refreshContent()
	return kind
}

func (s *TimerService) Frame() dto.Frame {
	return dto.Frame{
		State:          s.state,
		Config:         s.cfg,
		AnimationFrame: s.animationFrame,
		Quote:          s.quote,
		Activity:       s.activity,
		Ambient:        s.ambient.Rows(),
	}
}

func (s *TimerService) State() domain.State {
	return s.state
}

func (s *TimerService) Config() domain.TimerConfig {
	return s.cfg
}

func (s *TimerService) Summary(now time.Time) dto.Summary {
	elapsed := now.Sub(s.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return dto.Summary{
		StartedAt:          s.startedAt,
		Elapsed:            elapsed,
		CompletedPomodoros: s.state.CompletedPomodoros,
		TotalFocusMinutes:  s.state.TotalFocusMinutes,
		LastKind:           s.state.Kind,
	}
}

func (s *TimerService) refreshContent() {
	if s.content == nil {
		return
	}
	switch s.state.Kind {
	case domain.SessionShortBreak:
		s.quote = s.content.Pick(contentdto.CategoryBreakQuotes)
		s.activity = s.content.Pick(contentdto.CategoryStretches)
	case domain.SessionLongBreak:
		s.quote = s.content.Pick(contentdto.CategoryBreakQuotes)
		s.activity = s.content.Pick(contentdto.CategoryFunFacts)
	default:
		s.quote = s.content.Pick(contentdto.CategoryWorkQuotes)
		s.activity = ""
	}
}
