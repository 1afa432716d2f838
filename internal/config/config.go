package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/swaynav/internal/types"
)

const (
	DefaultConfigDir  = ".config"
	AppDir            = "swaynav"
	DefaultConfigFile = "config.yaml"
)

// DefaultConfigYAML is written by `swaynav config init`
const DefaultConfigYAML = `# swaynav configuration
settings:
  # IPC socket; empty uses $SWAYSOCK, $I3SOCK or the sway socket in $XDG_RUNTIME_DIR
  socket: ""
  # Request timeout as a Go duration ("500ms", "2s"); empty blocks until answered
  timeout: ""
  # Mode used when none is given on the command line
  defaultMode: next
  move: false
  noFocus: false
  stdout: false
`

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			DefaultMode: types.ModeNext.String(),
		},
	}
}

// configDir returns $XDG_CONFIG_HOME/swaynav or ~/.config/swaynav
func configDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppDir)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, AppDir)
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	return filepath.Join(configDir(), DefaultConfigFile)
}

// ResolvePath returns the existing default config file, trying YAML then
// JSON. Returns "" if neither exists.
func ResolvePath() string {
	dir := configDir()
	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadConfig loads configuration from path. With an empty path the default
// location is used, and a missing default file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ResolvePath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := DefaultConfig()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if cfg.Settings.DefaultMode == "" {
		cfg.Settings.DefaultMode = types.ModeNext.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Mode returns the parsed default mode
func (c *Config) Mode() (types.Mode, error) {
	return types.ParseMode(c.Settings.DefaultMode)
}

// GetTimeout returns the parsed request timeout, zero when unset
func (c *Config) GetTimeout() (time.Duration, error) {
	t := strings.TrimSpace(c.Settings.Timeout)
	if t == "" || t == "0" {
		return 0, nil
	}
	return time.ParseDuration(t)
}
