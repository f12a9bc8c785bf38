package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/t2048/internal/core"
)

// Game implements the 2048 puzzle game. It is driven one tick at a time by
// the platform and is not safe for concurrent use; the platform's event loop
// is its only owner.
type Game struct {
	cfg  core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	score int
	moves int
	board Board
	state core.State

	// In-flight animation; nil when idle.
	anim *Animation
	// Direction buffered while animating (PolicyBuffer only).
	pending    Direction
	hasPending bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new 2048 game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes the game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Target <= 0 {
		cfg.Target = DefaultTarget
	}
	if cfg.InputPolicy == "" {
		cfg.InputPolicy = core.PolicyBuffer
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.restart()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// restart replaces the board and zeroes the score, keeping the RNG stream.
func (g *Game) restart() {
	g.score = 0
	g.moves = 0
	g.state = core.StatePlaying
	g.anim = nil
	g.hasPending = false
	g.board = NewBoard(g.rng)
}

// Resize updates the screen dimensions and pauses the game while the
// terminal is too small to draw the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// NewGame starts a fresh board from any state except Quit.
func (g *Game) NewGame() {
	if g.state == core.StateQuit {
		return
	}
	g.restart()
}

// SetAnimation changes the slide duration and easing. The animation in
// flight keeps its timing; the next move uses the new values.
func (g *Game) SetAnimation(d time.Duration, easing core.Easing) {
	g.cfg.AnimDuration = max(d, 0)
	g.cfg.Easing = easing
}

// AnimDuration returns the duration used for the next move.
func (g *Game) AnimDuration() time.Duration {
	return g.cfg.AnimDuration
}

// Quit moves the game to the terminal Quit state.
func (g *Game) Quit() {
	g.state = core.StateQuit
	g.hasPending = false
}

// Step advances the game by one tick. Input is consumed first, then the
// animation clock advances by one tick, so the frame rendered afterwards
// reflects both.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == core.StateQuit {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	changed := g.handleInput(in)

	// The animation clock stands still while the terminal is too small.
	if !g.tooSmall && g.advanceAnimation() {
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// handleInput applies at most one action. Returns true if game state changed.
func (g *Game) handleInput(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionQuit):
		g.Quit()
		return true

	case in.Has(core.ActionRestart):
		if g.state != core.StateWon && g.state != core.StateLost {
			return false
		}
		g.restart()
		return true
	}

	dir, ok := DirectionFor(in.Action)
	if !ok || g.state.Terminal() || g.tooSmall {
		return false
	}

	if g.anim != nil {
		if g.cfg.InputPolicy == core.PolicyBuffer {
			g.pending = dir
			g.hasPending = true
		}
		return false
	}

	return g.processMove(dir)
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) bool {
	next, result := ApplyMove(g.board, dir, g.rng)
	if result.NoOp() {
		// Board didn't change - no spawn, no score, no animation
		return false
	}

	g.board = next
	g.score += result.ScoreDelta
	g.moves++
	g.anim = NewAnimation(result, g.cfg.AnimDuration, g.cfg.Easing)

	if g.anim.Done() {
		g.settle()
	}
	return true
}

// advanceAnimation moves the clock by one tick. Returns true if the
// animation completed during this tick.
func (g *Game) advanceAnimation() bool {
	if g.anim == nil {
		return false
	}
	if g.anim.Advance(g.cfg.TickDuration()) {
		return false
	}
	g.settle()
	return true
}

// settle finishes the current move: the terminal state is evaluated only
// once the move has finished animating, then a buffered direction is
// applied so its animation starts from the resting board.
func (g *Game) settle() {
	g.anim = nil
	g.state = DetectState(g.board, g.cfg.Target)

	if g.state != core.StatePlaying || !g.hasPending {
		g.hasPending = false
		return
	}

	dir := g.pending
	g.hasPending = false
	g.processMove(dir)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		State:     g.state,
		Animating: g.anim != nil,
		Paused:    g.tooSmall,
	}
}

// Board returns the current (post-move) board.
func (g *Game) Board() Board {
	return g.board
}

// Frame returns what should be drawn this tick.
func (g *Game) Frame() Frame {
	if g.anim != nil {
		return g.anim.Frame()
	}
	return StaticFrame(g.board)
}

// Pending returns the buffered direction, if any.
func (g *Game) Pending() (Direction, bool) {
	return g.pending, g.hasPending
}
