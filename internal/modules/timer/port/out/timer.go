package out

import (
	"pomo/internal/modules/timer/domain"
	"pomo/internal/modules/timer/dto"
)

// KeyPoller returns the pending command, or CommandNone, without blocking.
type KeyPoller interface {
	Poll() (domain.Command, error)
}

// Renderer draws a frame. It must not retain or mutate the frame.
type Renderer interface {
	Render(frame dto.Frame) error
}

// Notifier plays the end-of-session alert. It is best effort and may block
// for the length of the alert pattern.
type Notifier interface {
	Alert(sound domain.SoundType)
}
