// Package config provides YAML-based configuration loading for blockdrop.
package config

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config contains all tunable parameters of the game and its frontends.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Palette []string      `yaml:"palette"` // Seven hex colors, indexed by piece color index - 1
	Display DisplayConfig `yaml:"display"`
	Touch   TouchConfig   `yaml:"touch"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ArenaConfig defines the playfield dimensions in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the fixed drop interval.
type GravityConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// DropInterval returns the gravity interval as a duration.
func (g GravityConfig) DropInterval() time.Duration {
	return time.Duration(g.DropIntervalMS) * time.Millisecond
}

// ScoringConfig defines the flat per-row score.
type ScoringConfig struct {
	PointsPerRow int `yaml:"points_per_row"`
}

// DisplayConfig defines canvas rendering parameters.
type DisplayConfig struct {
	CellSize   int    `yaml:"cell_size"`   // Pixels per cell
	Background string `yaml:"background"`  // Hex color
	BlockImage string `yaml:"block_image"` // Optional tile image; empty = solid colors
}

// TouchConfig defines gesture recognition thresholds in pixels and milliseconds.
type TouchConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"`
	TapMaxMS       int `yaml:"tap_max_ms"`
	TapMaxMove     int `yaml:"tap_max_move"`
}

// TapMaxDuration returns the tap duration limit as a duration.
func (t TouchConfig) TapMaxDuration() time.Duration {
	return time.Duration(t.TapMaxMS) * time.Millisecond
}

// AudioConfig controls the optional sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

func validHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Arena.Width < 4 || c.Arena.Height < 4 {
		return fmt.Errorf("config: arena must be at least 4x4, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Gravity.DropIntervalMS <= 0 {
		return fmt.Errorf("config: drop_interval_ms must be positive, got %d", c.Gravity.DropIntervalMS)
	}
	if c.Scoring.PointsPerRow <= 0 {
		return fmt.Errorf("config: points_per_row must be positive, got %d", c.Scoring.PointsPerRow)
	}
	if len(c.Palette) != 7 {
		return fmt.Errorf("config: palette needs exactly 7 colors, got %d", len(c.Palette))
	}
	for i, col := range c.Palette {
		if !validHex(col) {
			return fmt.Errorf("config: palette[%d] %q is not a hex color", i, col)
		}
	}
	if c.Display.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Display.CellSize)
	}
	if !validHex(c.Display.Background) {
		return fmt.Errorf("config: background %q is not a hex color", c.Display.Background)
	}
	if c.Touch.SwipeThreshold <= 0 || c.Touch.TapMaxMS <= 0 || c.Touch.TapMaxMove <= 0 {
		return fmt.Errorf("config: touch thresholds must be positive")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}
