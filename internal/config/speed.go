package config

import "time"

// SpeedPreset represents a named animation speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// maxDurationMS caps explicit animation durations.
const maxDurationMS = 2000

// DurationForSpeed returns the slide duration for a speed preset. Unknown
// presets use normal speed.
func DurationForSpeed(preset SpeedPreset) time.Duration {
	switch preset {
	case SpeedSlow:
		return 200 * time.Millisecond
	case SpeedFast:
		return 100 * time.Millisecond
	default:
		return 150 * time.Millisecond
	}
}

// IsValidSpeed returns true if preset names a known speed. Empty means normal.
func IsValidSpeed(preset SpeedPreset) bool {
	switch preset {
	case "", SpeedSlow, SpeedNormal, SpeedFast:
		return true
	}
	return false
}

// SpeedNames lists the speed presets in order.
func SpeedNames() []string {
	return []string{string(SpeedSlow), string(SpeedNormal), string(SpeedFast)}
}
