package out

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomo/internal/modules/timer/domain"
	apperrors "pomo/internal/platform/errors"
)

func TestKeyCommandIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	cases := map[byte]domain.Command{
		'q':  domain.CommandQuit,
		'Q':  domain.CommandQuit,
		0x03: domain.CommandQuit,
		'p':  domain.CommandPause,
		'P':  domain.CommandPause,
		'r':  domain.CommandResume,
		'R':  domain.CommandResume,
		's':  domain.CommandSkip,
		'S':  domain.CommandSkip,
		'x':  domain.CommandNone,
		' ':  domain.CommandNone,
		0x1b: domain.CommandNone,
	}
	for key, want := range cases {
		assert.Equal(t, want, KeyCommand(key), "key %q", key)
	}
}

func TestReaderPollerSkipsUnmappedBytes(t *testing.T) {
	t.Parallel()
	poller, err := NewReaderPoller(strings.NewReader("\x1b[AxQp"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = poller.Close() })

	var got []domain.Command
	var pollErr error
	require.Eventually(t, func() bool {
		cmd, err := poller.Poll()
		if err != nil {
			pollErr = err
			return true
		}
		if cmd != domain.CommandNone {
			got = append(got, cmd)
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, []domain.Command{domain.CommandQuit, domain.CommandPause}, got)
	assert.ErrorIs(t, pollErr, io.EOF)
}

func TestPollDoesNotBlockWithoutInput(t *testing.T) {
	t.Parallel()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	poller, err := NewReaderPoller(r)
	require.NoError(t, err)

	cmd, err := poller.Poll()
	require.NoError(t, err)
	assert.Equal(t, domain.CommandNone, cmd)
	require.NoError(t, poller.Close())
	require.NoError(t, poller.Close())
}

func TestOpenRejectsNonTerminal(t *testing.T) {
	t.Parallel()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	_, err = OpenTerminalPoller(r)
	assert.ErrorIs(t, err, apperrors.ErrNotTerminal)
}
