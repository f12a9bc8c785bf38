// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/t2048/internal/core"
)

// Config contains all configuration for a t2048 session.
type Config struct {
	TickRate  int             `yaml:"tick_rate"`
	Theme     string          `yaml:"theme"`
	Rules     RulesConfig     `yaml:"rules"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
}

// RulesConfig defines the winning condition.
type RulesConfig struct {
	Target int `yaml:"target"`
}

// AnimationConfig defines how moves are animated.
type AnimationConfig struct {
	Speed      SpeedPreset `yaml:"speed"`
	DurationMS *int        `yaml:"duration_ms,omitempty"` // Overrides Speed when set
	Easing     core.Easing `yaml:"easing"`
}

// InputConfig defines how key presses reach the game.
type InputConfig struct {
	Policy    core.InputPolicy `yaml:"policy"`
	QueueSize int              `yaml:"queue_size"`
}

// Duration returns the effective animation length.
func (a AnimationConfig) Duration() time.Duration {
	if a.DurationMS != nil {
		return time.Duration(*a.DurationMS) * time.Millisecond
	}
	return DurationForSpeed(a.Speed)
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate must be in 1..240, got %d", c.TickRate)
	}
	if c.Rules.Target < 8 || c.Rules.Target&(c.Rules.Target-1) != 0 {
		return fmt.Errorf("config: rules.target must be a power of two >= 8, got %d", c.Rules.Target)
	}
	if !IsValidSpeed(c.Animation.Speed) {
		return fmt.Errorf("config: unknown animation.speed %q", c.Animation.Speed)
	}
	if d := c.Animation.DurationMS; d != nil && (*d < 0 || *d > maxDurationMS) {
		return fmt.Errorf("config: animation.duration_ms must be in 0..%d, got %d", maxDurationMS, *d)
	}
	switch c.Animation.Easing {
	case core.EasingLinear, core.EasingEaseOut:
	default:
		return fmt.Errorf("config: unknown animation.easing %q", c.Animation.Easing)
	}
	switch c.Input.Policy {
	case core.PolicyBuffer, core.PolicyDrop:
	default:
		return fmt.Errorf("config: unknown input.policy %q", c.Input.Policy)
	}
	if c.Input.QueueSize < 1 || c.Input.QueueSize > 64 {
		return fmt.Errorf("config: input.queue_size must be in 1..64, got %d", c.Input.QueueSize)
	}
	return nil
}

// ToRuntime converts the file configuration to the game's runtime config.
func (c Config) ToRuntime(screenW, screenH int, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if screenW > 0 {
		rc.ScreenW = screenW
	}
	if screenH > 0 {
		rc.ScreenH = screenH
	}
	rc.TickRate = c.TickRate
	rc.Seed = seed
	rc.Target = c.Rules.Target
	rc.AnimDuration = c.Animation.Duration()
	rc.Easing = c.Animation.Easing
	rc.InputPolicy = c.Input.Policy
	return rc
}

// YAML returns the configuration as a YAML document.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}
