package t2048

// Snapshot captures the complete game state for determinism testing and logs.
type Snapshot struct {
	Tick      uint64
	Score     int
	Moves     int
	Target    int
	Board     [BoardSize][BoardSize]int
	MaxTile   int // Highest tile on board
	State     string
	Animating bool
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Moves:     g.moves,
		Target:    g.cfg.Target,
		Board:     g.board.Values(),
		MaxTile:   MaxTile(g.board),
		State:     g.state.String(),
		Animating: g.anim != nil,
		Paused:    g.tooSmall,
	}
}
