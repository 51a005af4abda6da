package out

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"pomo/internal/modules/timer/domain"
	timerout "pomo/internal/modules/timer/port/out"
	"pomo/internal/platform/clock"
)

// Tone is one step of an alert: a note followed by a pause. A terminal bell
// ignores the frequency and length.
type Tone struct {
	Hz       int
	Duration time.Duration
	Gap      time.Duration
}

// TonePattern returns the notes played where the platform can beep at a
// given frequency. Unknown types fall back to the bell.
func TonePattern(sound domain.SoundType) []Tone {
	switch sound {
	case domain.SoundChime:
		return []Tone{
			{Hz: 523, Duration: 200 * time.Millisecond, Gap: 50 * time.Millisecond},
			{Hz: 659, Duration: 200 * time.Millisecond, Gap: 50 * time.Millisecond},
			{Hz: 784, Duration: 200 * time.Millisecond, Gap: 50 * time.Millisecond},
		}
	case domain.SoundGong:
		return []Tone{
			{Hz: 150, Duration: 500 * time.Millisecond, Gap: 200 * time.Millisecond},
			{Hz: 100, Duration: 700 * time.Millisecond},
		}
	case domain.SoundArcade:
		return []Tone{
			{Hz: 440, Duration: 100 * time.Millisecond},
			{Hz: 550, Duration: 100 * time.Millisecond},
			{Hz: 660, Duration: 100 * time.Millisecond},
			{Hz: 880, Duration: 100 * time.Millisecond},
			{Hz: 880, Duration: 300 * time.Millisecond},
		}
	case domain.SoundGentle:
		return []Tone{
			{Hz: 440, Duration: 300 * time.Millisecond, Gap: 300 * time.Millisecond},
			{Hz: 440, Duration: 300 * time.Millisecond},
		}
	default:
		return []Tone{
			{Hz: 800, Duration: 200 * time.Millisecond, Gap: 100 * time.Millisecond},
			{Hz: 800, Duration: 200 * time.Millisecond, Gap: 100 * time.Millisecond},
			{Hz: 800, Duration: 200 * time.Millisecond, Gap: 100 * time.Millisecond},
		}
	}
}

// BellPattern returns the pulses rung on the terminal bell. The spacing
// stands in for the missing notes, so it is wider than TonePattern's.
func BellPattern(sound domain.SoundType) []Tone {
	switch sound {
	case domain.SoundChime:
		return pulses(4, 150*time.Millisecond)
	case domain.SoundGong:
		return pulses(2, 800*time.Millisecond)
	case domain.SoundArcade:
		return pulses(5, 100*time.Millisecond)
	case domain.SoundGentle:
		return pulses(2, 500*time.Millisecond)
	default:
		return pulses(3, 300*time.Millisecond)
	}
}

func pulses(n int, gap time.Duration) []Tone {
	tones := make([]Tone, n)
	for i := range tones {
		tones[i] = Tone{Gap: gap}
	}
	return tones
}

// tonePlayer plays a single tone and knows which pattern suits it.
// Implementations live in per-OS files.
type tonePlayer interface {
	Pattern(sound domain.SoundType) []Tone
	Play(tone Tone) error
}

// bellPlayer writes the terminal bell.
type bellPlayer struct {
	w io.Writer
}

func (bellPlayer) Pattern(sound domain.SoundType) []Tone {
	return BellPattern(sound)
}

func (p bellPlayer) Play(Tone) error {
	_, err := io.WriteString(p.w, "\a")
	return err
}

// BellNotifier plays alert patterns. Failures are logged and swallowed.
type BellNotifier struct {
	player tonePlayer
	clock  clock.Clock
	log    zerolog.Logger
}

var _ timerout.Notifier = (*BellNotifier)(nil)

// NewBellNotifier picks the best tone player for the platform, falling back
// to a bell on w.
func NewBellNotifier(w io.Writer, clk clock.Clock, log zerolog.Logger) *BellNotifier {
	return &BellNotifier{player: platformPlayer(w), clock: clk, log: log}
}

// NewTerminalBellNotifier always uses the terminal bell.
func NewTerminalBellNotifier(w io.Writer, clk clock.Clock, log zerolog.Logger) *BellNotifier {
	return &BellNotifier{player: bellPlayer{w: w}, clock: clk, log: log}
}

// Alert blocks for the length of the pattern.
func (n *BellNotifier) Alert(sound domain.SoundType) {
	tones := n.player.Pattern(sound)
	for i, tone := range tones {
		if err := n.player.Play(tone); err != nil {
			n.log.Warn().Err(err).Str("sound", string(sound)).Msg("alert failed")
			return
		}
		if i == len(tones)-1 || tone.Gap <= 0 {
			continue
		}
		if err := n.clock.Sleep(context.Background(), tone.Gap); err != nil {
			return
		}
	}
}
