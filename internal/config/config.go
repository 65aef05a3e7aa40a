// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for 2048.
type Config struct {
	Gameplay Gameplay      `yaml:"gameplay"`
	Keys     KeyBindings   `yaml:"keys"`
	Storage  StorageConfig `yaml:"storage"`
}

// Gameplay defines gameplay parameters.
type Gameplay struct {
	WinTile  int `yaml:"win_tile"`
	TickRate int `yaml:"tick_rate"`
}

// KeyBindings maps actions to key names as reported by Bubble Tea
// (e.g. "up", "w", "ctrl+c").
type KeyBindings struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath       string `yaml:"db_path"`
	HighScoreKey string `yaml:"high_score_key"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration is playable.
func (c Config) Validate() error {
	if c.Gameplay.WinTile < 4 || c.Gameplay.WinTile&(c.Gameplay.WinTile-1) != 0 {
		return fmt.Errorf("%w: win_tile %d is not a power of two >= 4", ErrInvalid, c.Gameplay.WinTile)
	}
	if c.Gameplay.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Gameplay.TickRate)
	}
	if c.Storage.HighScoreKey == "" {
		return fmt.Errorf("%w: storage.high_score_key is empty", ErrInvalid)
	}

	seen := make(map[string]string)
	for action, keys := range c.Keys.byAction() {
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, action)
		}
		for _, k := range keys {
			if prev, ok := seen[k]; ok && prev != action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, action)
			}
			seen[k] = action
		}
	}
	return nil
}

func (k KeyBindings) byAction() map[string][]string {
	return map[string][]string{
		"up":      k.Up,
		"down":    k.Down,
		"left":    k.Left,
		"right":   k.Right,
		"pause":   k.Pause,
		"restart": k.Restart,
		"quit":    k.Quit,
	}
}
