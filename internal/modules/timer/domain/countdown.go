package domain

import "time"

const tickInterval = time.Second

// Countdown decides when a second of wall-clock time has passed. It is
// driven by timestamps rather than loop iterations so a variable frame rate
// does not change the countdown speed.
type Countdown struct {
	lastTick time.Time
}

func NewCountdown(now time.Time) Countdown {
	return Countdown{lastTick: now}
}

// Rebase restarts the current second at now. It is called on session
// transitions and for every frame spent paused.
func (c *Countdown) Rebase(now time.Time) {
	c.lastTick = now
}

// Due reports whether a full second has elapsed since the last tick. It
// moves the tick mark forward by exactly one second, so a stalled loop
// catches up one second per check rather than in a burst.
func (c *Countdown) Due(now time.Time) bool {
	if now.Sub(c.lastTick) < tickInterval {
		return false
	}
	c.lastTick = c.lastTick.Add(tickInterval)
	return true
}

// LastTick returns the current tick mark.
func (c Countdown) LastTick() time.Time {
	return c.lastTick
}
