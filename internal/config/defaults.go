package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Playback: PlaybackConfig{
			DelayMS: 250,
		},
		Theme: ThemeConfig{
			Monochrome: false,
		},
		Storage: StorageConfig{
			DB: "~/.t2048/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
