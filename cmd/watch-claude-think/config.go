package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bporterfield/watch-claude-think/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify watch-claude-think configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/watch-claude-think/config.yaml
Project-specific overrides can be placed in .watch-claude-think.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	dir := cfg.Claude.Dir
	if dir == "" {
		dir = "(default)"
	}
	theme := cfg.Display.Theme
	if theme == "" {
		theme = "(built-in)"
	}
	logFile := cfg.Debug.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}

	fmt.Printf("claude.dir: %s\n", dir)
	fmt.Printf("watch.poll_interval: %s\n", cfg.Watch.PollInterval)
	fmt.Printf("watch.all_types: %t\n", cfg.Watch.AllTypes)
	fmt.Printf("display.theme: %s\n", theme)
	fmt.Printf("display.max_width: %d\n", cfg.Display.MaxWidth)
	fmt.Printf("display.timestamps: %t\n", cfg.Display.Timestamps)
	fmt.Printf("debug.log_file: %s\n", logFile)
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue returns the string form of a configuration value.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "claude.dir":
		return cfg.Claude.Dir, nil
	case "watch.poll_interval":
		return cfg.Watch.PollInterval.String(), nil
	case "watch.all_types":
		return strconv.FormatBool(cfg.Watch.AllTypes), nil
	case "display.theme":
		return cfg.Display.Theme, nil
	case "display.max_width":
		return strconv.Itoa(cfg.Display.MaxWidth), nil
	case "display.timestamps":
		return strconv.FormatBool(cfg.Display.Timestamps), nil
	case "debug.log_file":
		return cfg.Debug.LogFile, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue parses and applies a configuration value.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "claude.dir":
		cfg.Claude.Dir = value
	case "watch.poll_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		cfg.Watch.PollInterval = d
	case "watch.all_types":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		cfg.Watch.AllTypes = b
	case "display.theme":
		cfg.Display.Theme = value
	case "display.max_width":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid width %q", value)
		}
		cfg.Display.MaxWidth = n
	case "display.timestamps":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		cfg.Display.Timestamps = b
	case "debug.log_file":
		cfg.Debug.LogFile = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
