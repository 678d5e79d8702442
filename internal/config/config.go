// Package config loads minitui settings from defaults, an optional TOML
// config file and MINITUI_* environment variables through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, so ui.frame_rate is
// read from MINITUI_UI_FRAME_RATE.
const EnvPrefix = "MINITUI"

// Config holds all settings for the minitui command.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
	Layout LayoutConfig `mapstructure:"layout"`
}

// UIConfig controls the frame driver.
type UIConfig struct {
	// FrameRate is the target number of frames per second (1-240).
	FrameRate int `mapstructure:"frame_rate"`
	// QuitByte is the input byte that ends the program. 3 is Ctrl+C.
	QuitByte int `mapstructure:"quit_byte"`
}

// LogConfig controls debug logging. Logs go to a file because the terminal
// is owned by the renderer.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// LayoutConfig selects what to display.
type LayoutConfig struct {
	// File is a TOML layout description. Empty selects Demo.
	File string `mapstructure:"file"`
	// Demo names a built-in layout: "dashboard" or "login".
	Demo string `mapstructure:"demo"`
	// Watch reloads File when it changes on disk.
	Watch bool `mapstructure:"watch"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			FrameRate: 60,
			QuitByte:  3,
		},
		Log: LogConfig{
			Level: "info",
		},
		Layout: LayoutConfig{
			Demo: "dashboard",
		},
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("ui.frame_rate", defaults.UI.FrameRate)
	v.SetDefault("ui.quit_byte", defaults.UI.QuitByte)

	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetDefault("layout.file", defaults.Layout.File)
	v.SetDefault("layout.demo", defaults.Layout.Demo)
	v.SetDefault("layout.watch", defaults.Layout.Watch)
}

// New returns a viper instance with defaults, environment binding and the
// config search path set up. An explicit file overrides the search path.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if file == "" {
		file = Locate()
	}
	if file != "" {
		v.SetConfigFile(file)
	}
	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	// e.g., MINITUI_LOG_FILE for log.file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file set up by New, if there is one.
func Read(v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

// Locate returns the first config file that exists among
// $XDG_CONFIG_HOME/minitui/config.toml and ./minitui.toml, or "".
func Locate() string {
	for _, path := range []string{
		filepath.Join(Dir(), "config.toml"),
		"minitui.toml",
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads the configuration from v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dir returns the user's minitui config directory.
func Dir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "minitui")
	}
	// Fall back to ~/.config/minitui
	home, err := os.UserHomeDir()
	if err != nil {
		return ".minitui"
	}
	return filepath.Join(home, ".config", "minitui")
}
