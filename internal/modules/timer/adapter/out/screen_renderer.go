package out

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	timerdto "pomo/internal/modules/timer/dto"
	timerout "pomo/internal/modules/timer/port/out"
	timerview "pomo/internal/ui/views/timer"
)

// SizeFunc reports the terminal width and height.
type SizeFunc func() (width, height int, err error)

// TerminalSize measures the terminal behind f.
func TerminalSize(f *os.File) SizeFunc {
	return func() (int, int, error) {
		return term.GetSize(int(f.Fd()))
	}
}

// ScreenRenderer draws the full panel on the alternate screen. Frames are
// written over the previous one in a single write.
type ScreenRenderer struct {
	out  *termenv.Output
	size SizeFunc
}

var _ timerout.Renderer = (*ScreenRenderer)(nil)

func NewScreenRenderer(w io.Writer, size SizeFunc) *ScreenRenderer {
	return &ScreenRenderer{out: termenv.NewOutput(w), size: size}
}

// Start enters the alternate screen and hides the cursor.
func (r *ScreenRenderer) Start() {
	r.out.AltScreen()
	r.out.HideCursor()
	r.out.ClearScreen()
}

// Stop brings back the cursor and the primary screen.
func (r *ScreenRenderer) Stop() {
	r.out.ShowCursor()
	r.out.ExitAltScreen()
}

func (r *ScreenRenderer) Render(frame timerdto.Frame) error {
	width, height := 0, 0
	if r.size != nil {
		if w, h, err := r.size(); err == nil {
			width, height = w, h
		}
	}
	view, err := timerview.View(frame, width, height)
	if err != nil {
		return err
	}
	if width > 0 && height > lipgloss.Height(view) {
		view = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
	} else if width > 0 {
		view = lipgloss.PlaceHorizontal(width, lipgloss.Center, view)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(termenv.CSI+termenv.CursorPositionSeq, 1, 1))
	// raw mode turns off output post-processing, so lines need an explicit \r
	b.WriteString(strings.ReplaceAll(view, "\n", termenv.CSI+termenv.EraseLineRightSeq+"\r\n"))
	b.WriteString(termenv.CSI + termenv.EraseLineRightSeq)
	b.WriteString(fmt.Sprintf(termenv.CSI+termenv.EraseDisplaySeq, 0))
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// TextRenderer rewrites a single status line. It is the fallback when the
// panel cannot be drawn.
type TextRenderer struct {
	w io.Writer
}

var _ timerout.Renderer = (*TextRenderer)(nil)

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(frame timerdto.Frame) error {
	line := "\r" + timerview.TextView(frame) + termenv.CSI + termenv.EraseLineRightSeq
	if _, err := io.WriteString(r.w, line); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	return nil
}
