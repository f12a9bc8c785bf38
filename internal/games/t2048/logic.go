package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/t2048/internal/core"
)

// spawn4Prob is the chance a spawned tile is a 4 instead of a 2.
const spawn4Prob = 0.10

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionFor maps a directional action to a Direction.
func DirectionFor(a core.Action) (Direction, bool) {
	if !a.IsDirection() {
		return 0, false
	}
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	default:
		return DirRight, true
	}
}

// EventKind tells the animation what happened to a tile during a move.
type EventKind int

const (
	EventMoved EventKind = iota
	EventMerged
	EventSpawned
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventMerged:
		return "merged"
	case EventSpawned:
		return "spawned"
	default:
		return "unknown"
	}
}

// TileEvent describes one tile's part in a move.
//
// For a merge two events are emitted: the survivor (Into == 0, Value is the
// doubled value) and the consumed tile (Into is the survivor's ID, Value is
// its own pre-merge value). The consumed tile no longer exists on the
// resulting board.
type TileEvent struct {
	Kind  EventKind
	Tile  TileID
	Value int
	Into  TileID
	From  Pos
	To    Pos
}

// Consumed reports whether the tile was destroyed by merging into another.
func (e TileEvent) Consumed() bool {
	return e.Kind == EventMerged && e.Into != 0
}

// MoveResult describes a move. Events hold exactly one entry for every tile
// on the pre-move board (stationary tiles have From == To), followed by the
// spawn, if any.
type MoveResult struct {
	Direction  Direction
	ScoreDelta int
	Changed    bool
	Events     []TileEvent
	Spawned    *TileEvent
}

// NoOp reports whether the move changed nothing. A no-op never spawns,
// scores or animates.
func (r MoveResult) NoOp() bool {
	return !r.Changed
}

// linePos maps index k along line i to a board position, where k == 0 is
// the leading edge for the direction of travel.
func linePos(dir Direction, line, k int) Pos {
	switch dir {
	case DirLeft:
		return Pos{line, k}
	case DirRight:
		return Pos{line, BoardSize - 1 - k}
	case DirUp:
		return Pos{k, line}
	case DirDown:
		return Pos{BoardSize - 1 - k, line}
	default:
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}
}

// lineStep records where one tile of a line ended up.
type lineStep struct {
	from, to int
	tile     Tile
	merged   bool   // survivor of a merge
	into     TileID // set when the tile was consumed
}

// slideLine compresses a line toward index 0 and merges equal neighbours.
// A tile produced by a merge never merges again in the same move, so
// [2,2,4] becomes [4,4] rather than [8].
func slideLine(line [BoardSize]Tile) (result [BoardSize]Tile, steps []lineStep, score int) {
	write := -1
	mergedAt := -1
	survivor := -1

	for k, t := range line {
		if t.Empty() {
			continue
		}

		if write >= 0 && write != mergedAt && result[write].Value == t.Value {
			// Merge with previous tile
			result[write].Value *= 2
			score += result[write].Value
			mergedAt = write
			steps[survivor].merged = true
			steps = append(steps, lineStep{from: k, to: write, tile: t, into: result[write].ID})
			continue
		}

		// Move tile
		write++
		result[write] = t
		survivor = len(steps)
		steps = append(steps, lineStep{from: k, to: write, tile: t})
	}

	return result, steps, score
}

// Slide moves every tile toward dir and merges. It is deterministic and
// never spawns. The returned board keeps the input's ID allocator.
func Slide(board Board, dir Direction) (Board, MoveResult) {
	next := Board{nextID: board.nextID}
	result := MoveResult{Direction: dir}

	for line := range BoardSize {
		var tiles [BoardSize]Tile
		for k := range BoardSize {
			tiles[k] = board.At(linePos(dir, line, k))
		}

		slid, steps, score := slideLine(tiles)
		for k, t := range slid {
			p := linePos(dir, line, k)
			next.cells[p.Row][p.Col] = t
		}
		result.ScoreDelta += score

		for _, s := range steps {
			ev := TileEvent{
				Kind:  EventMoved,
				Tile:  s.tile.ID,
				Value: s.tile.Value,
				From:  linePos(dir, line, s.from),
				To:    linePos(dir, line, s.to),
			}
			switch {
			case s.merged:
				ev.Kind = EventMerged
				ev.Value = slid[s.to].Value
			case s.into != 0:
				ev.Kind = EventMerged
				ev.Into = s.into
			}
			if ev.From != ev.To || ev.Kind == EventMerged {
				result.Changed = true
			}
			result.Events = append(result.Events, ev)
		}
	}

	return next, result
}

// ApplyMove slides the board and, if anything changed, spawns one tile on a
// random empty cell. A no-op returns the input board untouched.
func ApplyMove(board Board, dir Direction, rng *rand.Rand) (Board, MoveResult) {
	next, result := Slide(board, dir)
	if !result.Changed {
		return board, result
	}

	next, spawned, ok := Spawn(next, rng)
	if ok {
		result.Events = append(result.Events, spawned)
		result.Spawned = &result.Events[len(result.Events)-1]
	}
	return next, result
}

// Spawn places a 2 (90%) or 4 (10%) on a uniformly random empty cell.
// Returns false if the board is full.
func Spawn(board Board, rng *rand.Rand) (Board, TileEvent, bool) {
	empty := EmptyCells(board)
	if len(empty) == 0 {
		return board, TileEvent{}, false
	}

	p := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < spawn4Prob {
		value = 4
	}

	id := board.place(p, value)
	return board, TileEvent{Kind: EventSpawned, Tile: id, Value: value, From: p, To: p}, true
}

// NewBoard returns an empty board with two spawned tiles.
func NewBoard(rng *rand.Rand) Board {
	var b Board
	b, _, _ = Spawn(b, rng)
	b, _, _ = Spawn(b, rng)
	return b
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(board Board) []Pos {
	var cells []Pos
	for r := range BoardSize {
		for c := range BoardSize {
			if board.cells[r][c].Empty() {
				cells = append(cells, Pos{r, c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board.cells[r][c].Empty() {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := board.cells[r][c].Value
			if val == 0 {
				continue
			}
			if c < BoardSize-1 && board.cells[r][c+1].Value == val {
				return true
			}
			if r < BoardSize-1 && board.cells[r+1][c].Value == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			maxVal = max(maxVal, board.cells[r][c].Value)
		}
	}
	return maxVal
}

// DetectState reports Won if any tile reached target, Lost if the board is
// full and no direction changes it, and Playing otherwise.
func DetectState(board Board, target int) core.State {
	if MaxTile(board) >= target {
		return core.StateWon
	}
	if CanMove(board) {
		return core.StatePlaying
	}
	// A full board without equal neighbours cannot change, but confirm by
	// sliding so Lost always means every direction is a no-op.
	for _, dir := range Directions {
		if _, res := Slide(board, dir); res.Changed {
			return core.StatePlaying
		}
	}
	return core.StateLost
}
