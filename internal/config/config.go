// Package config wires Viper to the ringdial CLI: config file, environment
// and flag bindings, with defaults matching the library's.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config carries the resolved settings for the dial host.
type Config struct {
	RingWidth     int
	Scale         float64
	Size          int
	FPS           int
	Indeterminate bool
	Progress      float64
	Theme         string
	Outline       string // hex override, empty keeps the theme color
	Ring          string
	Center        string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RingWidth: 6,
		Scale:     0.75,
		FPS:       30,
		Theme:     "ember",
	}
}

// Init wires Viper with the config search path, environment and flag
// bindings. Non-fatal: a missing config file is fine.
func Init(root *cobra.Command) error {
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "ringdial"))
	}
	viper.SetConfigName("config") // config.{yaml|yml|json|toml}

	viper.SetEnvPrefix("RINGDIAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	flags := root.Flags()
	for key, flag := range map[string]string{
		"ring_width":    "ring-width",
		"scale":         "scale",
		"size":          "size",
		"fps":           "fps",
		"indeterminate": "indeterminate",
		"progress":      "progress",
		"theme":         "theme",
		"outline":       "outline",
		"ring":          "ring",
		"center":        "center",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	_ = viper.ReadInConfig() // ignore not found

	return nil
}

// Load reads the resolved settings out of Viper.
func Load() Config {
	return Config{
		RingWidth:     viper.GetInt("ring_width"),
		Scale:         viper.GetFloat64("scale"),
		Size:          viper.GetInt("size"),
		FPS:           viper.GetInt("fps"),
		Indeterminate: viper.GetBool("indeterminate"),
		Progress:      viper.GetFloat64("progress"),
		Theme:         viper.GetString("theme"),
		Outline:       viper.GetString("outline"),
		Ring:          viper.GetString("ring"),
		Center:        viper.GetString("center"),
	}
}

// Validate rejects settings the drawable would otherwise clamp silently, so
// typos surface at the CLI instead of rendering a degenerate dial.
func (c Config) Validate() error {
	if c.RingWidth < 0 {
		return fmt.Errorf("ring-width must not be negative, got %d", c.RingWidth)
	}
	if c.Scale < 0 {
		return fmt.Errorf("scale must not be negative, got %g", c.Scale)
	}
	if c.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", c.Size)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps must be in 1..120, got %d", c.FPS)
	}
	if c.Progress < 0 || c.Progress > 1 {
		return fmt.Errorf("progress must be in 0..1, got %g", c.Progress)
	}
	return nil
}
