//go:build windows

package out

import (
	"fmt"
	"io"
	"syscall"

	"pomo/internal/modules/timer/domain"
)

type beepPlayer struct {
	beep *syscall.LazyProc
}

func platformPlayer(w io.Writer) tonePlayer {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	proc := kernel32.NewProc("Beep")
	if err := proc.Find(); err != nil {
		return bellPlayer{w: w}
	}
	return beepPlayer{beep: proc}
}

func (beepPlayer) Pattern(sound domain.SoundType) []Tone {
	return TonePattern(sound)
}

// Play blocks for the tone's duration.
func (p beepPlayer) Play(tone Tone) error {
	result, _, err := p.beep.Call(uintptr(tone.Hz), uintptr(tone.Duration.Milliseconds()))
	if result == 0 {
		if err != nil {
			return fmt.Errorf("beep: %w", err)
		}
		return fmt.Errorf("beep: unknown error")
	}
	return nil
}
