package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spachava753/plugingroups/internal/catalog"
	"github.com/spachava753/plugingroups/internal/config"
	"github.com/spachava753/plugingroups/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, catalog.DefaultURL, cfg.CatalogURL)
	assert.Equal(t, "out.json", cfg.OutputFile)
	assert.Equal(t, "my-plugins", cfg.Group.Name)
	assert.Equal(t, "plugins from work", cfg.Group.Description)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.Timeout())
	assert.False(t, cfg.StrictSCM)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "plugingroups.yaml", `catalog_url: https://mirror.example.com/update-center.json
input_file: plugins.txt
output_file: group.json
group:
  name: platform
  description: platform team plugins
core_version: 2.426.3
strict_scm: true
log_level: debug
timeout_sec: 5
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example.com/update-center.json", cfg.CatalogURL)
	assert.Equal(t, "plugins.txt", cfg.InputFile)
	assert.Equal(t, "group.json", cfg.OutputFile)
	assert.Equal(t, "platform", cfg.Group.Name)
	assert.Equal(t, "platform team plugins", cfg.Group.Description)
	assert.Equal(t, "2.426.3", cfg.CoreVersion)
	assert.True(t, cfg.StrictSCM)
	assert.Equal(t, 5*time.Second, cfg.Timeout())

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "plugingroups.toml", `catalog_path = "update-center.json"
input_file = "plugins.txt"

[group]
name = "security"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "update-center.json", cfg.CatalogPath)
	assert.Equal(t, "plugins.txt", cfg.InputFile)
	assert.Equal(t, "security", cfg.Group.Name)
	assert.Equal(t, "plugins from work", cfg.Group.Description, "unset keys keep defaults")
	assert.Equal(t, "out.json", cfg.OutputFile)
}

func TestLoad_BlankValuesFallBackToDefaults(t *testing.T) {
	path := writeFile(t, "plugingroups.yml", `output_file: ""
group:
  name: ""
log_level: ""
timeout_sec: 0
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.json", cfg.OutputFile)
	assert.Equal(t, "my-plugins", cfg.Group.Name)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.Timeout())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("/nonexistent/plugingroups.yaml")
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.toml", "input_file = "))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.yaml", "group: [unterminated"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputFile = "from-file.txt"

	cfg.ApplyEnv(env(map[string]string{
		config.EnvInputFile:  " /tmp/plugins.txt ",
		config.EnvCatalogURL: "http://localhost:8080/uc.json",
		config.EnvOutputFile: "",
	}))

	assert.Equal(t, "/tmp/plugins.txt", cfg.InputFile)
	assert.Equal(t, "http://localhost:8080/uc.json", cfg.CatalogURL)
	assert.Equal(t, "out.json", cfg.OutputFile, "blank env values are ignored")
}

func TestValidate(t *testing.T) {
	valid := config.DefaultConfig()
	valid.InputFile = "plugins.txt"

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
		wantMsg string
	}{
		{"valid", func(*config.Config) {}, nil, ""},
		{"no input", func(c *config.Config) { c.InputFile = "" }, models.ErrNoInputFile, ""},
		{"no catalog", func(c *config.Config) { c.CatalogURL = ""; c.CatalogPath = "" }, models.ErrNoCatalog, ""},
		{"catalog path only", func(c *config.Config) { c.CatalogURL = ""; c.CatalogPath = "uc.json" }, nil, ""},
		{"no output", func(c *config.Config) { c.OutputFile = "" }, nil, "output_file"},
		{"negative timeout", func(c *config.Config) { c.TimeoutSec = -1 }, nil, "timeout_sec"},
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }, nil, "log_level"},
		{"bad core version", func(c *config.Config) { c.CoreVersion = "not-a-version" }, nil, "core_version"},
		{"good core version", func(c *config.Config) { c.CoreVersion = "2.401.3" }, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.wantMsg), err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}
