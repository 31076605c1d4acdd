package config

import (
	_ "embed"
)

//go:embed defaults/blockdrop.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/blockdrop.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			DropIntervalMS: 500,
		},
		Scoring: ScoringConfig{
			PointsPerRow: 10,
		},
		Palette: []string{
			"#FF0D72",
			"#0DC2FF",
			"#0DFF72",
			"#F538FF",
			"#FF8E0D",
			"#FFE138",
			"#3877FF",
		},
		Display: DisplayConfig{
			CellSize:   30,
			Background: "#000000",
		},
		Touch: TouchConfig{
			SwipeThreshold: 40,
			TapMaxMS:       250,
			TapMaxMove:     15,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
