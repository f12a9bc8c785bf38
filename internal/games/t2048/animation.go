package t2048

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/t2048/internal/core"
)

// Animation constants
const (
	pulseShare     = 0.3  // Trailing share of the window used by the merge pulse
	pulseAmplitude = 0.25 // Peak extra scale of a merged tile
)

// Sprite is one tile as it should be drawn at a point in time.
// Row and Col are fractional cell coordinates.
type Sprite struct {
	Tile    TileID
	Value   int
	Row     float64
	Col     float64
	Scale   float64
	Opacity float64
	layer   int
}

// Visible reports whether the sprite should be drawn at all.
func (s Sprite) Visible() bool {
	return s.Opacity > 0
}

// Frame is the drawable state of the board at one instant. Sprites are in
// draw order: consumed tiles first, so survivors land on top of them.
type Frame struct {
	Sprites []Sprite
	Done    bool
}

// Visible returns only the sprites that should be drawn.
func (f Frame) Visible() []Sprite {
	out := make([]Sprite, 0, len(f.Sprites))
	for _, s := range f.Sprites {
		if s.Visible() {
			out = append(out, s)
		}
	}
	return out
}

// StaticFrame returns the resting frame for a board.
func StaticFrame(board Board) Frame {
	f := Frame{Done: true}
	for r := range BoardSize {
		for c := range BoardSize {
			t := board.cells[r][c]
			if t.Empty() {
				continue
			}
			f.Sprites = append(f.Sprites, Sprite{
				Tile:    t.ID,
				Value:   t.Value,
				Row:     float64(r),
				Col:     float64(c),
				Scale:   1,
				Opacity: 1,
				layer:   1,
			})
		}
	}
	return f
}

// Animation turns a MoveResult into a time-parameterized sequence of frames.
// Sampling is a pure function of the result and the elapsed time; the only
// mutable state is the clock advanced by the game loop.
type Animation struct {
	result   MoveResult
	duration time.Duration
	elapsed  time.Duration
	easing   core.Easing
}

// NewAnimation creates an animation for result lasting d. A zero or negative
// d yields an animation that is already done.
func NewAnimation(result MoveResult, d time.Duration, easing core.Easing) *Animation {
	return &Animation{
		result:   result,
		duration: max(d, 0),
		easing:   easing,
	}
}

// Advance moves the clock forward. Returns true if the animation is still
// in progress.
func (a *Animation) Advance(dt time.Duration) bool {
	if dt > 0 {
		a.elapsed = min(a.elapsed+dt, a.duration)
	}
	return !a.Done()
}

// Done reports whether the window has elapsed.
func (a *Animation) Done() bool {
	return a.elapsed >= a.duration
}

// Elapsed returns the time advanced so far.
func (a *Animation) Elapsed() time.Duration {
	return a.elapsed
}

// Duration returns the length of the window.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Frame samples the animation at its current clock.
func (a *Animation) Frame() Frame {
	return a.Sample(a.elapsed)
}

// Sample returns the frame at elapsed. At elapsed <= 0 the visible sprites
// match the pre-move board; at elapsed >= duration the frame matches the
// post-move board.
func (a *Animation) Sample(elapsed time.Duration) Frame {
	if elapsed >= a.duration {
		return a.final()
	}

	progress := 0.0
	if elapsed > 0 {
		progress = float64(elapsed) / float64(a.duration)
	}
	t := a.ease(progress)
	pulsing := progress >= 1-pulseShare

	f := Frame{Sprites: make([]Sprite, 0, len(a.result.Events))}
	for _, e := range a.result.Events {
		s := Sprite{
			Tile:    e.Tile,
			Value:   e.Value,
			Row:     core.Lerp(float64(e.From.Row), float64(e.To.Row), t),
			Col:     core.Lerp(float64(e.From.Col), float64(e.To.Col), t),
			Scale:   1,
			Opacity: 1,
			layer:   1,
		}

		switch {
		case e.Kind == EventSpawned:
			s.Opacity = progress
			s.layer = 2
		case e.Consumed():
			// Hidden once the survivor starts pulsing with the doubled value.
			if pulsing {
				s.Opacity = 0
			}
			s.layer = 0
		case e.Kind == EventMerged:
			if pulsing {
				u := (progress - (1 - pulseShare)) / pulseShare
				s.Scale = 1 + pulseAmplitude*math.Sin(math.Pi*u)
			} else {
				s.Value = e.Value / 2
			}
		}
		f.Sprites = append(f.Sprites, s)
	}

	slices.SortStableFunc(f.Sprites, func(x, y Sprite) int {
		return cmp.Compare(x.layer, y.layer)
	})
	return f
}

// final returns the resting frame after the move.
func (a *Animation) final() Frame {
	f := Frame{Done: true, Sprites: make([]Sprite, 0, len(a.result.Events))}
	for _, e := range a.result.Events {
		if e.Consumed() {
			continue
		}
		f.Sprites = append(f.Sprites, Sprite{
			Tile:    e.Tile,
			Value:   e.Value,
			Row:     float64(e.To.Row),
			Col:     float64(e.To.Col),
			Scale:   1,
			Opacity: 1,
			layer:   1,
		})
	}
	return f
}

func (a *Animation) ease(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	if a.easing == core.EasingEaseOut {
		return easeOutQuad(t)
	}
	return t
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
