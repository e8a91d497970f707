// Package config handles configuration loading and management for
// watch-claude-think. It supports XDG config paths, project-level overrides,
// and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for watch-claude-think.
type Config struct {
	Claude  ClaudeConfig  `mapstructure:"claude"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Display DisplayConfig `mapstructure:"display"`
	Debug   DebugConfig   `mapstructure:"debug"`
}

// ClaudeConfig locates the Claude Code data directory.
type ClaudeConfig struct {
	// Dir overrides the session log root. Empty means ~/.claude, or
	// CLAUDE_CONFIG_DIR when that is set.
	Dir string `mapstructure:"dir"`
}

// WatchConfig controls the tailing loop.
type WatchConfig struct {
	// PollInterval bounds staleness when filesystem events go missing.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// AllTypes shows tool use and system records in addition to thinking,
	// assistant text, and user prompts.
	AllTypes bool `mapstructure:"all_types"`
}

// DisplayConfig holds transcript rendering settings.
type DisplayConfig struct {
	// Theme is a path to a theme file. Empty selects the built-in theme.
	Theme string `mapstructure:"theme"`
	// MaxWidth caps formatted content width on wide terminals.
	MaxWidth int `mapstructure:"max_width"`
	// Timestamps adds wall-clock times to message headers.
	Timestamps bool `mapstructure:"timestamps"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	// LogFile, when set, receives internal diagnostics. Debug output never
	// goes to the terminal because the renderer owns both streams.
	LogFile string `mapstructure:"log_file"`
}

// Load loads configuration from XDG paths, project overrides, and environment
// variables. Precedence (highest to lowest):
// 1. Environment variables (CLAUDE_CONFIG_DIR)
// 2. Project config (.watch-claude-think.yaml in current directory or parent)
// 3. User config (~/.config/watch-claude-think/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Merge project config (takes precedence)
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("claude.dir", "CLAUDE_CONFIG_DIR")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Claude.Dir = os.ExpandEnv(cfg.Claude.Dir)
	cfg.Display.Theme = os.ExpandEnv(cfg.Display.Theme)
	cfg.Debug.LogFile = os.ExpandEnv(cfg.Debug.LogFile)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("claude.dir", cfg.Claude.Dir)
	v.Set("watch.poll_interval", cfg.Watch.PollInterval.String())
	v.Set("watch.all_types", cfg.Watch.AllTypes)
	v.Set("display.theme", cfg.Display.Theme)
	v.Set("display.max_width", cfg.Display.MaxWidth)
	v.Set("display.timestamps", cfg.Display.Timestamps)
	v.Set("debug.log_file", cfg.Debug.LogFile)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("claude.dir", "")

	v.SetDefault("watch.poll_interval", "2s")
	v.SetDefault("watch.all_types", false)

	v.SetDefault("display.theme", "")
	v.SetDefault("display.max_width", 120)
	v.SetDefault("display.timestamps", false)

	v.SetDefault("debug.log_file", "")
}

// getUserConfigDir returns the XDG config directory for watch-claude-think.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "watch-claude-think")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "watch-claude-think")
	}
	return filepath.Join(home, ".config", "watch-claude-think")
}

// findProjectConfig searches for .watch-claude-think.yaml in the current
// directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".watch-claude-think.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
