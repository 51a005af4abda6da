//go:build !windows

package out

import "io"

func platformPlayer(w io.Writer) tonePlayer {
	return bellPlayer{w: w}
}
