package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TEXTSUM_LOG_LEVEL.
const EnvPrefix = "TEXTSUM_"

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type           string   `yaml:"type"             env:"TYPE"`
	Sentences      int      `yaml:"sentences"        env:"SENTENCES"`
	AutoRatio      float64  `yaml:"auto_ratio"       env:"AUTO_RATIO"`
	MinTokenLength int      `yaml:"min_token_length" env:"MIN_TOKEN_LENGTH"`
	ExtraStopwords []string `yaml:"extra_stopwords,omitempty" env:"EXTRA_STOPWORDS"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// UIConfig selects the interactive front end.
type UIConfig struct {
	Mode string `yaml:"mode" env:"MODE"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer" envPrefix:"SUMMARIZER_"`
	Log        LogConfig        `yaml:"log"        envPrefix:"LOG_"`
	UI         UIConfig         `yaml:"ui"         envPrefix:"UI_"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}
	applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./textsum.yaml first, then ~/.config/textsum/config.yaml.
// If neither exists, defaults are returned along with the user path.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "textsum.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := DefaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal renders cfg as YAML.
func Marshal(cfg *AppConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Default returns a fresh copy of the built-in configuration.
func Default() *AppConfig { return defaultConfig() }

// DefaultUserConfigPath is ~/.config/textsum/config.yaml.
func DefaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

// Validate checks enumerations and numeric ranges.
func (c *AppConfig) Validate() error {
	if c.Summarizer.Type != "frequency" {
		return fmt.Errorf("config error: unknown summarizer %q", c.Summarizer.Type)
	}
	if c.Summarizer.AutoRatio <= 0 || c.Summarizer.AutoRatio > 1 {
		return fmt.Errorf("config error: 'auto_ratio' must be in (0, 1], got %v", c.Summarizer.AutoRatio)
	}
	if c.Summarizer.MinTokenLength < 1 {
		return fmt.Errorf("config error: 'min_token_length' must be at least 1")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config error: unknown log format %q", c.Log.Format)
	}
	switch c.UI.Mode {
	case "prompt", "tui":
	default:
		return fmt.Errorf("config error: unknown ui mode %q", c.UI.Mode)
	}
	return nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{Type: "frequency", AutoRatio: 0.30, MinTokenLength: 2},
		Log:        LogConfig{Level: "info", Format: "text"},
		UI:         UIConfig{Mode: "prompt"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = def.Summarizer.Type
	}
	if cfg.Summarizer.AutoRatio == 0 {
		cfg.Summarizer.AutoRatio = def.Summarizer.AutoRatio
	}
	if cfg.Summarizer.MinTokenLength == 0 {
		cfg.Summarizer.MinTokenLength = def.Summarizer.MinTokenLength
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = def.UI.Mode
	}
}
