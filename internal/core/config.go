package core

import "time"

// InputPolicy decides what happens to a direction pressed while a slide is
// still animating.
type InputPolicy string

const (
	// PolicyBuffer keeps the latest direction in a single slot and applies it
	// as soon as the running animation completes.
	PolicyBuffer InputPolicy = "buffer"
	// PolicyDrop discards directions that arrive during an animation.
	PolicyDrop InputPolicy = "drop"
)

// Easing selects the interpolation curve for sliding tiles.
type Easing string

const (
	EasingLinear  Easing = "linear"
	EasingEaseOut Easing = "ease-out"
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	Target       int           // Tile value that wins the game
	AnimDuration time.Duration // Length of one move's animation; 0 disables it
	Easing       Easing
	InputPolicy  InputPolicy
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		Seed:         0, // 0 means use current time in platform layer
		Target:       2048,
		AnimDuration: 150 * time.Millisecond,
		Easing:       EasingLinear,
		InputPolicy:  PolicyBuffer,
	}
}

// TickDuration returns the wall time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// State is the game's lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state freezes move processing.
func (s State) Terminal() bool {
	return s != StatePlaying
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int   // Current score
	State     State // Playing, Won, Lost or Quit
	Animating bool  // Whether a move animation is in flight
	Paused    bool  // Whether the game is paused (terminal too small)
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Changed is true if this tick accepted a move, restart or state change.
	Changed bool
}
