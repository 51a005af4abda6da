package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pomo/internal/bootstrap"
	"pomo/internal/platform/clock"
	"pomo/internal/platform/config"
	apperrors "pomo/internal/platform/errors"
	timerview "pomo/internal/ui/views/timer"
)

const splashDelay = 1500 * time.Millisecond

func main() {
	os.Exit(exitCode(newRootCmd().Execute(), os.Stderr))
}

// exitCode prints err and maps it to a process status: 2 for bad input,
// 1 for anything else.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, "pomo:", err)
	if errors.Is(err, apperrors.ErrInvalidInput) {
		return 2
	}
	return 1
}

type rootFlags struct {
	configPath string
	work       int
	shortBreak int
	longBreak  int
	pomodoros  int
	ambient    string
	sound      string
	quotes     string
	ui         string
	logFile    string
	logLevel   string
	noSplash   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "pomo",
		Short: "A terminal Pomodoro timer",
		Long: `A terminal Pomodoro timer with an animated display.

Controls:
  P - Pause      S - Skip session
  R - Resume     Q - Quit

Custom quotes file format:
  One quote per line. A line containing only '---' separates work quotes
  from break quotes.`,
		Example: `  pomo                        # default 25/5/15 cycle
  pomo --work 30              # 30 minute work sessions
  pomo --ambient rain         # rain animation
  pomo --sound chime          # chime alert
  pomo --quotes my_quotes.txt # custom quotes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runTimer(cmd, cfg)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/pomo/settings.yaml)")
	pf.IntVarP(&flags.work, "work", "w", defaults.WorkMinutes, "work session length in minutes")
	pf.IntVarP(&flags.shortBreak, "short-break", "s", defaults.ShortBreakMinutes, "short break length in minutes")
	pf.IntVarP(&flags.longBreak, "long-break", "l", defaults.LongBreakMinutes, "long break length in minutes")
	pf.IntVarP(&flags.pomodoros, "pomodoros", "p", defaults.PomodorosUntilLongBreak, "pomodoros before a long break")
	pf.StringVarP(&flags.ambient, "ambient", "a", defaults.AmbientMode, "ambient animation: none|rain|stars")
	pf.StringVar(&flags.sound, "sound", defaults.SoundType, "alert sound: bell|chime|gong|arcade|gentle")
	pf.StringVarP(&flags.quotes, "quotes", "q", "", "custom quotes file")
	pf.StringVar(&flags.ui, "ui", defaults.UI, "frontend: loop|tea")
	pf.StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "log level: debug|info|warn|error")
	pf.BoolVar(&flags.noSplash, "no-splash", false, "skip the startup panel")

	root.AddCommand(newQuotesCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	return root
}

// resolveConfig layers explicitly set flags over the settings file.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	changed := cmd.Flags().Changed
	if changed("work") {
		cfg.WorkMinutes = flags.work
	}
	if changed("short-break") {
		cfg.ShortBreakMinutes = flags.shortBreak
	}
	if changed("long-break") {
		cfg.LongBreakMinutes = flags.longBreak
	}
	if changed("pomodoros") {
		cfg.PomodorosUntilLongBreak = flags.pomodoros
	}
	if changed("ambient") {
		cfg.AmbientMode = flags.ambient
	}
	if changed("sound") {
		cfg.SoundType = flags.sound
	}
	if changed("quotes") {
		cfg.QuotesFile = flags.quotes
	}
	if changed("ui") {
		cfg.UI = flags.ui
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("no-splash") {
		cfg.Splash = !flags.noSplash
	}
	return cfg, nil
}

func loadApp(ctx context.Context, cfg config.Config) (*bootstrap.App, error) {
	return bootstrap.New(ctx, cfg)
}

func runTimer(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	app, err := loadApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	out := cmd.OutOrStdout()
	if cfg.Splash {
		_, _ = fmt.Fprintln(out, timerview.Splash(app.Timer))
		if err := (clock.SystemClock{}).Sleep(ctx, splashDelay); err != nil {
			return nil
		}
	}

	summary, err := app.Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, timerview.Summary(summary))
	return nil
}

func newQuotesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "quotes",
		Short: "Print the quotes the timer will use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			quotes := app.Quotes
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "source: %s\n\nwork quotes (%d):\n", quotes.Source, len(quotes.Work))
			for _, quote := range quotes.Work {
				_, _ = fmt.Fprintf(w, "  %s\n", quote)
			}
			_, _ = fmt.Fprintf(w, "\nbreak quotes (%d):\n", len(quotes.Break))
			for _, quote := range quotes.Break {
				_, _ = fmt.Fprintf(w, "  %s\n", quote)
			}
			return nil
		},
	}
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	configCmd := &cobra.Command{Use: "config", Short: "Settings file commands"}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			if _, err := bootstrap.Validate(cfg); err != nil {
				return err
			}
			serialized, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", cfg.SettingsPath, serialized)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configPath
			if path == "" {
				resolved, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = resolved
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s already exists (use --force to overwrite)", apperrors.ErrInvalidInput, path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	configCmd.AddCommand(initCmd)
	return configCmd
}
