package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/afkctl/afk/pkg/banner"
)

// Config represents the complete afk configuration.
type Config struct {
	Reason           string `yaml:"reason,omitempty" json:"reason,omitempty"`
	WithoutColor     bool   `yaml:"without-color,omitempty" json:"without-color,omitempty"`
	WithoutTimestamp bool   `yaml:"without-timestamp,omitempty" json:"without-timestamp,omitempty"`
	Speed            Speed  `yaml:"speed,omitempty" json:"speed,omitempty"`
	Gap              int    `yaml:"gap" json:"gap"`
	Summary          bool   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Log              Log    `yaml:"log,omitempty" json:"log,omitempty"`
}

// Log configures diagnostic logging. Stdout belongs to the animation, so
// logs are only written when File is set.
type Log struct {
	File       string `yaml:"file,omitempty" json:"file,omitempty"`
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`
	MaxSizeMB  int    `yaml:"max-size-mb,omitempty" json:"max-size-mb,omitempty"`
	MaxBackups int    `yaml:"max-backups,omitempty" json:"max-backups,omitempty"`
}

// Speed selects the animation frame delay.
type Speed string

const (
	SpeedFast   Speed = "fast"
	SpeedNormal Speed = "normal"
	SpeedSlow   Speed = "slow"
)

// Speeds lists the accepted speed values.
var Speeds = []Speed{SpeedFast, SpeedNormal, SpeedSlow}

// ParseSpeed converts a flag or file value to a Speed.
func ParseSpeed(s string) (Speed, error) {
	sp := Speed(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sp.delay(); !ok {
		return "", fmt.Errorf("invalid speed %q: must be one of fast, normal, slow", s)
	}
	return sp, nil
}

func (s Speed) delay() (time.Duration, bool) {
	switch s {
	case SpeedFast:
		return 75 * time.Millisecond, true
	case SpeedNormal:
		return 100 * time.Millisecond, true
	case SpeedSlow:
		return 150 * time.Millisecond, true
	}
	return 0, false
}

// FrameDelay returns the pause between two frames. Unknown speeds fall back
// to normal; Validate rejects them before the animation starts.
func (s Speed) FrameDelay() time.Duration {
	if d, ok := s.delay(); ok {
		return d
	}
	return 100 * time.Millisecond
}

// Colored reports whether the banner is painted.
func (c *Config) Colored() bool {
	return !c.WithoutColor
}

// ShowTimestamp reports whether the footer carries timing information.
func (c *Config) ShowTimestamp() bool {
	return !c.WithoutTimestamp
}

// Default returns the configuration used when no file and no flags are given.
func Default() *Config {
	cfg := &Config{Gap: banner.DefaultGap}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults applies default values to empty fields.
func (c *Config) SetDefaults() {
	if c.Speed == "" {
		c.Speed = SpeedNormal
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
}
