// Package t2048 implements the 2048 puzzle: the grid engine, the move
// animation, the per-tick state machine and the board renderer.
package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the board dimension.
const BoardSize = 4

// DefaultTarget is the tile value that wins the game.
const DefaultTarget = 2048

// TileID identifies a tile across moves. Zero means "no tile".
type TileID uint64

// Tile is a numbered tile. The zero Tile is an empty cell.
type Tile struct {
	ID    TileID
	Value int
}

// Empty reports whether the cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Pos is a cell position on the board.
type Pos struct {
	Row, Col int
}

func (p Pos) valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a 4x4 grid of tiles. It is a value type: copying a Board copies
// every cell. Tile IDs are allocated by the board, so they are unique within
// one game.
type Board struct {
	cells  [BoardSize][BoardSize]Tile
	nextID TileID
}

// FromValues builds a board from raw values, giving every tile a fresh ID in
// row-major order. Zero means empty. Panics on values that are not powers of
// two of at least 2.
func FromValues(values [BoardSize][BoardSize]int) Board {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			v := values[r][c]
			if v == 0 {
				continue
			}
			if !validTileValue(v) {
				panic(fmt.Sprintf("t2048: invalid tile value %d at %v", v, Pos{r, c}))
			}
			b.place(Pos{r, c}, v)
		}
	}
	return b
}

func validTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// place puts a new tile on an empty cell and returns its ID.
func (b *Board) place(p Pos, value int) TileID {
	if !p.valid() {
		panic(fmt.Sprintf("t2048: position %v out of range", p))
	}
	if !b.cells[p.Row][p.Col].Empty() {
		panic(fmt.Sprintf("t2048: cell %v is occupied", p))
	}
	b.nextID++
	b.cells[p.Row][p.Col] = Tile{ID: b.nextID, Value: value}
	return b.nextID
}

// At returns the tile at p. Panics if p is off the board.
func (b Board) At(p Pos) Tile {
	if !p.valid() {
		panic(fmt.Sprintf("t2048: position %v out of range", p))
	}
	return b.cells[p.Row][p.Col]
}

// Value returns the tile value at (row, col), 0 if empty.
func (b Board) Value(row, col int) int {
	return b.At(Pos{row, col}).Value
}

// Values returns the raw value grid.
func (b Board) Values() [BoardSize][BoardSize]int {
	var v [BoardSize][BoardSize]int
	for r := range BoardSize {
		for c := range BoardSize {
			v[r][c] = b.cells[r][c].Value
		}
	}
	return v
}

// TileCount returns the number of occupied cells.
func (b Board) TileCount() int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if !b.cells[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

// String renders the board as rows of values, for logs and test failures.
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range BoardSize {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.cells[r][c].Value
			if v == 0 {
				sb.WriteString("    .")
				continue
			}
			s := strconv.Itoa(v)
			sb.WriteString(strings.Repeat(" ", max(5-len(s), 0)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
