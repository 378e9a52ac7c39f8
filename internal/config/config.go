// Package config loads and saves the showcase defaults. Values are layered
// with viper: built-in defaults, the JSON config file, SWIPEMODAL_* environment
// variables, then explicitly set command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marcus/swipemodal/pkg/modal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFile = ".swipemodal/config.json"
	envPrefix  = "SWIPEMODAL"
)

// Config holds the showcase defaults.
type Config struct {
	Direction            string  `mapstructure:"direction"`
	CloseOnBackdropPress bool    `mapstructure:"close_on_backdrop_press"`
	SwipeToClose         bool    `mapstructure:"swipe_to_close"`
	SwipeThreshold       int     `mapstructure:"swipe_threshold"`
	AnimationMS          int     `mapstructure:"animation_ms"`
	FPS                  int     `mapstructure:"fps"`
	Flex                 float64 `mapstructure:"flex"`
	BodyFile             string  `mapstructure:"body_file"`
	LogFile              string  `mapstructure:"log_file"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"direction":       "direction",
	"backdrop-close":  "close_on_backdrop_press",
	"swipe":           "swipe_to_close",
	"swipe-threshold": "swipe_threshold",
	"duration":        "animation_ms",
	"fps":             "fps",
	"flex":            "flex",
	"body":            "body_file",
	"log-file":        "log_file",
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Direction:            modal.Left.String(),
		CloseOnBackdropPress: true,
		SwipeToClose:         true,
		SwipeThreshold:       modal.DefaultSwipeThreshold,
		AnimationMS:          int(modal.DefaultDuration / time.Millisecond),
		FPS:                  60,
		Flex:                 modal.DefaultFlex,
	}
}

// RegisterFlags adds the config-backed flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("direction", d.Direction, "edge the modal slides in from (left, right, top, bottom)")
	fs.Bool("backdrop-close", d.CloseOnBackdropPress, "close the modal when the backdrop is pressed")
	fs.Bool("swipe", d.SwipeToClose, "close the modal with a swipe toward its edge")
	fs.Int("swipe-threshold", d.SwipeThreshold, "swipe distance in cells that dismisses the modal")
	fs.Int("duration", d.AnimationMS, "slide animation duration in milliseconds")
	fs.Int("fps", d.FPS, "animation frame rate")
	fs.Float64("flex", d.Flex, "share of the screen the modal content occupies (0-1]")
	fs.String("body", d.BodyFile, "markdown file rendered as the modal body")
	fs.String("log-file", d.LogFile, "write logs to this file")
}

// Path returns the config file path. An explicit override wins over the
// per-directory default.
func Path(baseDir, override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(baseDir, configFile)
}

func newViper(env bool) *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("direction", d.Direction)
	v.SetDefault("close_on_backdrop_press", d.CloseOnBackdropPress)
	v.SetDefault("swipe_to_close", d.SwipeToClose)
	v.SetDefault("swipe_threshold", d.SwipeThreshold)
	v.SetDefault("animation_ms", d.AnimationMS)
	v.SetDefault("fps", d.FPS)
	v.SetDefault("flex", d.Flex)
	v.SetDefault("body_file", d.BodyFile)
	v.SetDefault("log_file", d.LogFile)

	v.SetConfigType("json")
	if env {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
	}
	return v
}

// Load reads the config at path, which may not exist, with SWIPEMODAL_*
// environment overrides. Flags in fs that were set on the command line
// override every other source; fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	return load(newViper(true), path, fs)
}

// LoadFile reads only the defaults and the config at path. Use it when the
// result is saved back, so environment overrides are not persisted.
func LoadFile(path string) (*Config, error) {
	return load(newViper(false), path, nil)
}

func load(v *viper.Viper, path string, fs *pflag.FlagSet) (*Config, error) {

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path as JSON, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("direction", cfg.Direction)
	v.Set("close_on_backdrop_press", cfg.CloseOnBackdropPress)
	v.Set("swipe_to_close", cfg.SwipeToClose)
	v.Set("swipe_threshold", cfg.SwipeThreshold)
	v.Set("animation_ms", cfg.AnimationMS)
	v.Set("fps", cfg.FPS)
	v.Set("flex", cfg.Flex)
	v.Set("body_file", cfg.BodyFile)
	v.Set("log_file", cfg.LogFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting. An AnimationMS of zero is valid
// and turns the slide animations off.
func (c *Config) Validate() error {
	if _, err := modal.ParseDirection(c.Direction); err != nil {
		return err
	}
	switch {
	case c.SwipeThreshold <= 0:
		return fmt.Errorf("swipe threshold must be positive, got %d", c.SwipeThreshold)
	case c.AnimationMS < 0:
		return fmt.Errorf("animation duration must not be negative, got %dms", c.AnimationMS)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.Flex <= 0 || c.Flex > 1:
		return fmt.Errorf("flex must be in (0, 1], got %g", c.Flex)
	}
	return nil
}

// Duration returns the animation duration.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.AnimationMS) * time.Millisecond
}

// ModalProps builds closed modal props from the config.
func (c *Config) ModalProps() (modal.Props, error) {
	dir, err := modal.ParseDirection(c.Direction)
	if err != nil {
		return modal.Props{}, err
	}
	p := modal.DefaultProps()
	p.Direction = dir
	p.CloseOnBackdropPress = c.CloseOnBackdropPress
	p.SwipeToClose = c.SwipeToClose
	p.SwipeThreshold = c.SwipeThreshold
	p.Duration = c.Duration()
	p.Flex = c.Flex
	return p, nil
}
