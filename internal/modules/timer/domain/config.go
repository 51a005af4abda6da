package domain

import (
	"fmt"
	"strings"

	apperrors "pomo/internal/platform/errors"
)

type SessionKind int

const (
	SessionWork SessionKind = iota
	SessionShortBreak
	SessionLongBreak
)

func (k SessionKind) String() string {
	switch k {
	case SessionWork:
		return "work"
	case SessionShortBreak:
		return "short_break"
	case SessionLongBreak:
		return "long_break"
	}
	return fmt.Sprintf("session_kind(%d)", int(k))
}

// IsBreak reports whether k is one of the two break kinds.
func (k SessionKind) IsBreak() bool {
	return k == SessionShortBreak || k == SessionLongBreak
}

type AmbientMode string

const (
	AmbientNone  AmbientMode = "none"
	AmbientRain  AmbientMode = "rain"
	AmbientStars AmbientMode = "stars"
)

var AmbientModes = []AmbientMode{AmbientNone, AmbientRain, AmbientStars}

func ParseAmbientMode(value string) (AmbientMode, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return AmbientNone, nil
	}
	for _, mode := range AmbientModes {
		if string(mode) == value {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: ambient mode %q (want none, rain or stars)", apperrors.ErrInvalidInput, value)
}

type SoundType string

const (
	SoundBell   SoundType = "bell"
	SoundChime  SoundType = "chime"
	SoundGong   SoundType = "gong"
	SoundArcade SoundType = "arcade"
	SoundGentle SoundType = "gentle"
)

var SoundTypes = []SoundType{SoundBell, SoundChime, SoundGong, SoundArcade, SoundGentle}

func ParseSoundType(value string) (SoundType, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return SoundBell, nil
	}
	for _, sound := range SoundTypes {
		if string(sound) == value {
			return sound, nil
		}
	}
	return "", fmt.Errorf("%w: sound type %q (want bell, chime, gong, arcade or gentle)", apperrors.ErrInvalidInput, value)
}

// TimerConfig is fixed for the lifetime of a run.
type TimerConfig struct {
	WorkMinutes             int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	PomodorosUntilLongBreak int
	AmbientMode             AmbientMode
	SoundType               SoundType
	QuotesFile              string
}

// Validate enforces the invariants the state machine relies on.
func (c TimerConfig) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"work minutes", c.WorkMinutes},
		{"short break minutes", c.ShortBreakMinutes},
		{"long break minutes", c.LongBreakMinutes},
		{"pomodoros until long break", c.PomodorosUntilLongBreak},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", apperrors.ErrInvalidInput, check.name, check.value)
		}
	}
	if _, err := ParseAmbientMode(string(c.AmbientMode)); err != nil {
		return err
	}
	if _, err := ParseSoundType(string(c.SoundType)); err != nil {
		return err
	}
	return nil
}

// MinutesFor returns the configured length of a session kind.
func (c TimerConfig) MinutesFor(kind SessionKind) int {
	switch kind {
	case SessionShortBreak:
		return c.ShortBreakMinutes
	case SessionLongBreak:
		return c.LongBreakMinutes
	default:
		return c.WorkMinutes
	}
}

// SecondsFor returns the configured length of a session kind in seconds.
func (c TimerConfig) SecondsFor(kind SessionKind) int {
	return c.MinutesFor(kind) * 60
}
