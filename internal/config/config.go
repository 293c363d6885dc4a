// internal/config/config.go
//
// This package handles configuration and the .rosterbook directory
// structure. Every directory rosterbook runs in gets a .rosterbook/ folder
// holding the config file and session logs. Roster data itself never
// touches disk; each session starts from an empty roster.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// RosterDir is the name of the directory we create in each project.
	RosterDir = ".rosterbook"

	defaultLogLevel    = "info"
	defaultJournalTail = 8
	defaultAccent      = "#5B8DEF"
)

const defaultConfigYAML = `# rosterbook configuration
version: 1

logging:
  # debug, info, warn, or error
  level: info

journal:
  # how many journal lines the shell keeps on screen
  tail: 8

ui:
  # accent color for headers and highlights
  accent: "#5B8DEF"
`

// LoggingConfig controls the session log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// JournalConfig controls the on-screen activity journal.
type JournalConfig struct {
	Tail int `yaml:"tail"`
}

// UIConfig carries presentation preferences.
type UIConfig struct {
	Accent string `yaml:"accent"`
}

// FileConfig models .rosterbook/config.yaml.
type FileConfig struct {
	Version int           `yaml:"version"`
	Logging LoggingConfig `yaml:"logging"`
	Journal JournalConfig `yaml:"journal"`
	UI      UIConfig      `yaml:"ui"`
}

// envOverrides captures the ROSTERBOOK_* environment variables, which win
// over the file.
type envOverrides struct {
	LogLevel    string `env:"ROSTERBOOK_LOG_LEVEL"`
	JournalTail int    `env:"ROSTERBOOK_JOURNAL_TAIL"`
	Accent      string `env:"ROSTERBOOK_ACCENT"`
}

// Config holds the runtime configuration for a rosterbook session.
type Config struct {
	// ProjectDir is the directory rosterbook was pointed at.
	ProjectDir string

	// RosterProjectDir is ProjectDir/.rosterbook.
	RosterProjectDir string

	File FileConfig
}

// InitRosterDir creates the .rosterbook directory structure in the given
// project directory. Called once at startup, before the shell takes over
// the terminal.
//
// Structure created:
// .rosterbook/
// ├── config.yaml   <- written with defaults on first run
// └── logs/         <- session log and activity journal
func InitRosterDir(projectDir string) error {
	rosterDir := filepath.Join(projectDir, RosterDir)
	if err := os.MkdirAll(filepath.Join(rosterDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureConfigFile(filepath.Join(rosterDir, "config.yaml"))
}

// NewConfig loads the configuration for projectDir: file values over
// defaults, environment values over the file.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		RosterProjectDir: filepath.Join(projectDir, RosterDir),
		File:             defaultFileConfig(),
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.File.applyDefaults()
	cfg.File.normalize()
	if err := cfg.File.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location for the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.RosterProjectDir, "config.yaml")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.RosterProjectDir, "logs")
}

// JournalPath returns the file backing the activity journal.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// LogLevel returns the configured level name.
func (c *Config) LogLevel() string {
	return c.File.Logging.Level
}

// SetLogLevel overrides the level for this session only; it is never
// written back to the file.
func (c *Config) SetLogLevel(level string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	if !validLevel(level) {
		return fmt.Errorf("config: unknown log level %q", level)
	}
	c.File.Logging.Level = level
	return nil
}

// JournalTail returns how many journal lines the shell shows.
func (c *Config) JournalTail() int {
	return c.File.Journal.Tail
}

// Accent returns the UI accent color.
func (c *Config) Accent() string {
	return c.File.UI.Accent
}

func (c *Config) loadFile() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.File = parsed
	return nil
}

func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	if overrides.LogLevel != "" {
		c.File.Logging.Level = overrides.LogLevel
	}
	if overrides.JournalTail > 0 {
		c.File.Journal.Tail = overrides.JournalTail
	}
	if overrides.Accent != "" {
		c.File.UI.Accent = overrides.Accent
	}
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version: 1,
		Logging: LoggingConfig{Level: defaultLogLevel},
		Journal: JournalConfig{Tail: defaultJournalTail},
		UI:      UIConfig{Accent: defaultAccent},
	}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if fc.Logging.Level == "" {
		fc.Logging.Level = defaultLogLevel
	}
	if fc.Journal.Tail == 0 {
		fc.Journal.Tail = defaultJournalTail
	}
	if fc.UI.Accent == "" {
		fc.UI.Accent = defaultAccent
	}
}

func (fc *FileConfig) normalize() {
	fc.Logging.Level = strings.ToLower(strings.TrimSpace(fc.Logging.Level))
	fc.UI.Accent = strings.TrimSpace(fc.UI.Accent)
}

func (fc FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if !validLevel(fc.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn, or error")
	}
	if fc.Journal.Tail < 1 {
		return fmt.Errorf("journal.tail must be >= 1")
	}
	if fc.UI.Accent == "" {
		return fmt.Errorf("ui.accent is required")
	}
	return nil
}

func validLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
