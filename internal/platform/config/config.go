package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDirName       = "pomo"
	settingsFileName = "settings.yaml"
)

// Config is the effective runtime configuration before domain validation.
type Config struct {
	WorkMinutes             int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	PomodorosUntilLongBreak int
	AmbientMode             string
	SoundType               string
	QuotesFile              string
	UI                      string
	LogFile                 string
	LogLevel                string
	Splash                  bool

	SettingsPath string
}

type yamlSettings struct {
	WorkMinutes             int    `yaml:"work_minutes"`
	ShortBreakMinutes       int    `yaml:"short_break_minutes"`
	LongBreakMinutes        int    `yaml:"long_break_minutes"`
	PomodorosUntilLongBreak int    `yaml:"pomodoros_until_long_break"`
	AmbientMode             string `yaml:"ambient_mode"`
	SoundType               string `yaml:"sound_type"`
	QuotesFile              string `yaml:"quotes_file,omitempty"`
	UI                      string `yaml:"ui"`
	LogFile                 string `yaml:"log_file,omitempty"`
	LogLevel                string `yaml:"log_level"`
	Splash                  *bool  `yaml:"splash,omitempty"`
}

// Default returns the classic 25/5/15 cycle with four pomodoros per long break.
func Default() Config {
	return Config{
		WorkMinutes:             25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		PomodorosUntilLongBreak: 4,
		AmbientMode:             "none",
		SoundType:               "bell",
		UI:                      "loop",
		LogLevel:                "info",
		Splash:                  true,
	}
}

// DefaultPath resolves the settings file under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appDirName, settingsFileName), nil
}

// Load reads settings from path, or from DefaultPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = resolved
	}
	cfg.SettingsPath = path

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return cfg, fmt.Errorf("parse settings yaml: %w", err)
	}
	applyYamlSettings(&cfg, fileData)
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("settings path is required")
	}
	serialized, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// Marshal renders cfg in the settings file format.
func Marshal(cfg Config) ([]byte, error) {
	splash := cfg.Splash
	fileData := yamlSettings{
		WorkMinutes:             cfg.WorkMinutes,
		ShortBreakMinutes:       cfg.ShortBreakMinutes,
		LongBreakMinutes:        cfg.LongBreakMinutes,
		PomodorosUntilLongBreak: cfg.PomodorosUntilLongBreak,
		AmbientMode:             cfg.AmbientMode,
		SoundType:               cfg.SoundType,
		QuotesFile:              cfg.QuotesFile,
		UI:                      cfg.UI,
		LogFile:                 cfg.LogFile,
		LogLevel:                cfg.LogLevel,
		Splash:                  &splash,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

func applyYamlSettings(cfg *Config, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		cfg.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		cfg.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		cfg.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.PomodorosUntilLongBreak > 0 {
		cfg.PomodorosUntilLongBreak = fileData.PomodorosUntilLongBreak
	}
	if value := normalize(fileData.AmbientMode); value != "" {
		cfg.AmbientMode = value
	}
	if value := normalize(fileData.SoundType); value != "" {
		cfg.SoundType = value
	}
	if value := normalize(fileData.UI); value != "" {
		cfg.UI = value
	}
	if value := normalize(fileData.LogLevel); value != "" {
		cfg.LogLevel = value
	}
	if value := strings.TrimSpace(fileData.QuotesFile); value != "" {
		cfg.QuotesFile = value
	}
	if value := strings.TrimSpace(fileData.LogFile); value != "" {
		cfg.LogFile = value
	}
	if fileData.Splash != nil {
		cfg.Splash = *fileData.Splash
	}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
