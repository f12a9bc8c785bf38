package config

import (
	_ "embed"

	"github.com/vovakirdan/t2048/internal/core"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Theme:    "classic",
		Rules: RulesConfig{
			Target: 2048,
		},
		Animation: AnimationConfig{
			Speed:  SpeedNormal,
			Easing: core.EasingLinear,
		},
		Input: InputConfig{
			Policy:    core.PolicyBuffer,
			QueueSize: core.DefaultQueueSize,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
