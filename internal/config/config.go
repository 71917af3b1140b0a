// internal/config/config.go
//
// Optional settings for colloquium. Without a settings file every value
// falls back to the defaults below, which reproduce the stock layout.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/colloquium/internal/scaffold"
)

const (
	// AppName names the per-user config and cache directories.
	AppName = "colloquium"

	// DefaultPrompt is shown before every answer.
	DefaultPrompt = "> "

	configFileName = "config.yaml"
)

// Settings models config.yaml.
type Settings struct {
	Prompt    string `yaml:"prompt"`
	Extension string `yaml:"extension"`
	PartsDir  string `yaml:"parts_dir"`
	LogFile   string `yaml:"log_file,omitempty"`
}

// Config holds the runtime configuration for one run.
type Config struct {
	// Path is the settings file that was read, empty when running on defaults
	Path string

	Settings Settings
}

// DefaultPath returns <user config dir>/colloquium/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, configFileName)
}

// Load reads settings from path. With an empty path the per-user file is
// used when it exists; otherwise defaults apply. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	cfg.Path = path
	cfg.Settings = parsed
	return cfg, nil
}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{Settings: defaultSettings()}
}

// Prompt returns the prompt glyph.
func (c *Config) Prompt() string {
	return c.Settings.Prompt
}

// Layout returns the naming rules for the generated tree.
func (c *Config) Layout() scaffold.Layout {
	return scaffold.Layout{Extension: c.Settings.Extension, PartsDir: c.Settings.PartsDir}
}

// LogPath returns the log file location, or "" when logging is disabled.
// Logging is opt-in: nothing is written unless log_file names a file.
func (c *Config) LogPath() string {
	switch strings.ToLower(c.Settings.LogFile) {
	case "", "-", "off", "none":
		return ""
	}
	return filepath.Clean(c.Settings.LogFile)
}

// SetLogFile overrides the log destination, e.g. from a command-line flag.
func (c *Config) SetLogFile(value string) {
	c.Settings.LogFile = strings.TrimSpace(value)
}

func defaultSettings() Settings {
	return Settings{
		Prompt:    DefaultPrompt,
		Extension: scaffold.DefaultExtension,
		PartsDir:  scaffold.DefaultPartsDir,
	}
}

func (s *Settings) applyDefaults() {
	// the prompt keeps its own whitespace, only a missing one is replaced
	if s.Prompt == "" {
		s.Prompt = DefaultPrompt
	}
	if strings.TrimSpace(s.Extension) == "" {
		s.Extension = scaffold.DefaultExtension
	}
	if strings.TrimSpace(s.PartsDir) == "" {
		s.PartsDir = scaffold.DefaultPartsDir
	}
}

func (s *Settings) normalize() {
	s.Extension = strings.TrimSpace(s.Extension)
	if !strings.HasPrefix(s.Extension, ".") {
		s.Extension = "." + s.Extension
	}
	s.PartsDir = strings.Trim(strings.TrimSpace(s.PartsDir), "/")
	s.LogFile = strings.TrimSpace(s.LogFile)
}

func (s *Settings) validate() error {
	if s.Extension == "." || strings.ContainsAny(s.Extension, `/\`) {
		return fmt.Errorf("extension %q is not a file extension", s.Extension)
	}
	switch s.PartsDir {
	case "", ".", "..":
		return fmt.Errorf("parts_dir %q is not a directory name", s.PartsDir)
	}
	if strings.ContainsAny(s.PartsDir, `/\`) {
		return fmt.Errorf("parts_dir must be a single directory name, got %q", s.PartsDir)
	}
	return nil
}
