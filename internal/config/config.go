// Package config provides YAML-based configuration loading for t2048.
package config

// Config contains all configuration for t2048.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Theme    ThemeConfig    `yaml:"theme"`
	Storage  StorageConfig  `yaml:"storage"`
}

// PlaybackConfig controls how recorded games replay in the terminal.
type PlaybackConfig struct {
	DelayMS int `yaml:"delay_ms"` // Pause between replayed moves
}

// ThemeConfig controls how the board is drawn.
type ThemeConfig struct {
	Monochrome bool `yaml:"monochrome"`
}

// StorageConfig controls where finished games are persisted.
type StorageConfig struct {
	DB string `yaml:"db"` // SQLite path, ~ expands to the home directory
}
