package dto

import (
	"time"

	"pomo/internal/modules/timer/domain"
)

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	State          domain.State
	Config         domain.TimerConfig
	AnimationFrame int
	Quote          string
	Activity       string
	Ambient        []string
}

type Summary struct {
	StartedAt          time.Time
	Elapsed            time.Duration
	CompletedPomodoros int
	TotalFocusMinutes  int
	LastKind           domain.SessionKind
}
