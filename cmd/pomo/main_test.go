package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomo/internal/platform/config"
	apperrors "pomo/internal/platform/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFlagsOverrideSettingsFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 50\nshort_break_minutes: 10\nsound_type: gong\n"), 0o644))

	out, err := execute(t, "config", "show", "--config", path, "-s", "7", "--ambient", "stars")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.WorkMinutes)
	assert.Contains(t, out, "work_minutes: 50")
	assert.Contains(t, out, "short_break_minutes: 7")
	assert.Contains(t, out, "sound_type: gong")
	assert.Contains(t, out, "ambient_mode: stars")
}

func TestInvalidDurationIsUsageError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	_, err := execute(t, "config", "show", "--config", path, "--work", "0")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	var stderr bytes.Buffer
	assert.Equal(t, 2, exitCode(err, &stderr))
	assert.Contains(t, stderr.String(), "work minutes must be positive")
}

func TestUnknownLogLevelIsUsageError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	_, err := execute(t, "config", "show", "--config", path, "--log-level", "bogus")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	var stderr bytes.Buffer
	assert.Equal(t, 2, exitCode(err, &stderr))
	assert.Contains(t, stderr.String(), `log level "bogus"`)
}

func TestUnparsableFlagIsUsageError(t *testing.T) {
	t.Parallel()
	_, err := execute(t, "config", "show", "--work", "soon")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer
	assert.Zero(t, exitCode(nil, &stderr))
	assert.Empty(t, stderr.String())
	assert.Equal(t, 1, exitCode(errors.New("terminal gone"), &stderr))
	assert.Equal(t, 1, exitCode(apperrors.ErrNotTerminal, &stderr))
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "pomo", "settings.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.WorkMinutes)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestQuotesCommandListsCustomFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	quotes := filepath.Join(dir, "quotes.txt")
	require.NoError(t, os.WriteFile(quotes, []byte("Ship it\n---\nStretch\n"), 0o644))

	out, err := execute(t, "quotes", "--config", filepath.Join(dir, "settings.yaml"), "-q", quotes)
	require.NoError(t, err)
	assert.Contains(t, out, "source: "+quotes)
	assert.Contains(t, out, "work quotes (1):\n  Ship it")
	assert.Contains(t, out, "break quotes (1):\n  Stretch")
}
