package out

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"pomo/internal/modules/timer/domain"
	timerout "pomo/internal/modules/timer/port/out"
	apperrors "pomo/internal/platform/errors"
)

const (
	keyCtrlC      = 0x03
	keyBufferSize = 64
)

// KeyCommand maps a single input byte to a command. Letters are matched
// case-insensitively; Ctrl-C quits because raw mode swallows SIGINT.
func KeyCommand(b byte) domain.Command {
	switch b {
	case 'q', 'Q', keyCtrlC:
		return domain.CommandQuit
	case 'p', 'P':
		return domain.CommandPause
	case 'r', 'R':
		return domain.CommandResume
	case 's', 'S':
		return domain.CommandSkip
	}
	return domain.CommandNone
}

// TerminalPoller reads keys from a raw-mode terminal on a background
// goroutine and hands them to Poll without blocking.
type TerminalPoller struct {
	fd      int
	restore *term.State
	reader  cancelreader.CancelReader

	keys chan byte
	errs chan error
	done chan struct{}

	closeOnce sync.Once
}

var _ timerout.KeyPoller = (*TerminalPoller)(nil)

// OpenTerminalPoller switches in to raw mode and starts reading. Callers
// must defer Close to restore the terminal.
func OpenTerminalPoller(in *os.File) (*TerminalPoller, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("open key poller: %w", apperrors.ErrNotTerminal)
	}
	restore, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	reader, err := cancelreader.NewReader(in)
	if err != nil {
		_ = term.Restore(fd, restore)
		return nil, fmt.Errorf("open key reader: %w", err)
	}
	p := newTerminalPoller(reader)
	p.fd = fd
	p.restore = restore
	return p, nil
}

func newTerminalPoller(reader cancelreader.CancelReader) *TerminalPoller {
	p := &TerminalPoller{
		fd:     -1,
		reader: reader,
		keys:   make(chan byte, keyBufferSize),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go p.readLoop()
	return p
}

func (p *TerminalPoller) readLoop() {
	defer close(p.done)
	buf := make([]byte, keyBufferSize)
	for {
		n, err := p.reader.Read(buf)
		for _, b := range buf[:n] {
			select {
			case p.keys <- b:
			default:
				// full buffer: the user is typing faster than we render
			}
		}
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) {
				p.errs <- fmt.Errorf("read key: %w", err)
			}
			return
		}
	}
}

// Poll returns the first actionable pending key, or CommandNone when no
// such key is waiting. Unmapped bytes such as escape sequences are dropped.
func (p *TerminalPoller) Poll() (domain.Command, error) {
	for {
		select {
		case b := <-p.keys:
			if cmd := KeyCommand(b); cmd != domain.CommandNone {
				return cmd, nil
			}
		default:
			select {
			case err := <-p.errs:
				return domain.CommandNone, err
			default:
				return domain.CommandNone, nil
			}
		}
	}
}

// Close stops the reader and restores the terminal. It is safe to call more
// than once.
func (p *TerminalPoller) Close() error {
	var err error
	p.closeOnce.Do(func() {
		if p.reader.Cancel() {
			<-p.done
		}
		err = p.reader.Close()
		if p.restore != nil {
			if restoreErr := term.Restore(p.fd, p.restore); restoreErr != nil {
				err = errors.Join(err, fmt.Errorf("restore terminal: %w", restoreErr))
			}
		}
	})
	return err
}

// NewReaderPoller polls keys from an arbitrary reader without touching
// terminal modes. It backs piped input in tests and tools.
func NewReaderPoller(r io.Reader) (*TerminalPoller, error) {
	reader, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open key reader: %w", err)
	}
	return newTerminalPoller(reader), nil
}
