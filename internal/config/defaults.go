package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration.
// It matches defaults/2048.yaml and is used if the embedded file fails to parse.
func Default() Config {
	return Config{
		Gameplay: Gameplay{
			WinTile:  2048,
			TickRate: 60,
		},
		Keys: KeyBindings{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Pause:   []string{"p", "esc"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Storage: StorageConfig{
			DBPath:       "~/.twenty48/scores.db",
			HighScoreKey: "twenty48_high_score",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
