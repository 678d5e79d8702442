package config

import (
	"errors"
	"fmt"
	"slices"
)

// ValidLogLevels returns the accepted log.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidDemos returns the names of the built-in layouts.
func ValidDemos() []string {
	return []string{"dashboard", "login"}
}

// Validate checks every field and returns all problems joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.FrameRate < 1 || c.UI.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("ui.frame_rate: must be between 1 and 240 (got: %d)", c.UI.FrameRate))
	}
	if c.UI.QuitByte < 0 || c.UI.QuitByte > 255 {
		errs = append(errs, fmt.Errorf("ui.quit_byte: must be a byte value 0-255 (got: %d)", c.UI.QuitByte))
	}
	if c.Log.Level != "" && !slices.Contains(ValidLogLevels(), c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: must be one of %v (got: %q)", ValidLogLevels(), c.Log.Level))
	}
	if c.Layout.File == "" && !slices.Contains(ValidDemos(), c.Layout.Demo) {
		errs = append(errs, fmt.Errorf("layout.demo: must be one of %v (got: %q)", ValidDemos(), c.Layout.Demo))
	}
	if c.Layout.Watch && c.Layout.File == "" {
		errs = append(errs, errors.New("layout.watch: requires layout.file"))
	}

	return errors.Join(errs...)
}
