package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/spachava753/plugingroups/internal/catalog"
	"github.com/spachava753/plugingroups/internal/models"
)

// Environment variables read by ApplyEnv.
const (
	EnvInputFile  = "PLUGINS_INPUT_FILE"
	EnvCatalogURL = "PLUGINS_CATALOG_URL"
	EnvOutputFile = "PLUGINS_OUTPUT_FILE"
)

// Config is the run configuration.
type Config struct {
	CatalogURL  string      `yaml:"catalog_url" toml:"catalog_url"`
	CatalogPath string      `yaml:"catalog_path" toml:"catalog_path"`
	InputFile   string      `yaml:"input_file" toml:"input_file"`
	OutputFile  string      `yaml:"output_file" toml:"output_file"`
	Group       GroupConfig `yaml:"group" toml:"group"`
	CoreVersion string      `yaml:"core_version" toml:"core_version"` // empty disables the compatibility report
	StrictSCM   bool        `yaml:"strict_scm" toml:"strict_scm"`
	LogLevel    string      `yaml:"log_level" toml:"log_level"`
	TimeoutSec  float64     `yaml:"timeout_sec" toml:"timeout_sec"`
}

type GroupConfig struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		CatalogURL: catalog.DefaultURL,
		OutputFile: "out.json",
		Group: GroupConfig{
			Name:        "my-plugins",
			Description: "plugins from work",
		},
		LogLevel:   "info",
		TimeoutSec: 60,
	}
}

// Load reads a configuration file on top of the defaults. Files ending in
// .toml are parsed as TOML, anything else as YAML.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
		for _, key := range md.Undecoded() {
			slog.Warn("ignoring unknown config key", "key", key.String(), "path", path)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Apply defaults for values the file blanked out
	if cfg.OutputFile == "" {
		cfg.OutputFile = "out.json"
	}
	if cfg.Group.Name == "" {
		cfg.Group.Name = "my-plugins"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TimeoutSec == 0 {
		cfg.TimeoutSec = 60
	}

	return cfg, nil
}

// ApplyEnv overrides values from the environment using lookup, which has the
// signature of os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvInputFile); ok && strings.TrimSpace(v) != "" {
		c.InputFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvCatalogURL); ok && strings.TrimSpace(v) != "" {
		c.CatalogURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvOutputFile); ok && strings.TrimSpace(v) != "" {
		c.OutputFile = strings.TrimSpace(v)
	}
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.InputFile == "" {
		return models.ErrNoInputFile
	}
	if c.CatalogURL == "" && c.CatalogPath == "" {
		return models.ErrNoCatalog
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}
	if c.TimeoutSec < 0 {
		return fmt.Errorf("timeout_sec must not be negative, got %v", c.TimeoutSec)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.CoreVersion != "" {
		if _, err := semver.NewVersion(c.CoreVersion); err != nil {
			return fmt.Errorf("core_version %q: %w", c.CoreVersion, err)
		}
	}
	return nil
}

// Timeout returns the catalog fetch timeout. Zero means no timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec * float64(time.Second))
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
