package t2048

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func lineOf(values [BoardSize]int) [BoardSize]Tile {
	var line [BoardSize]Tile
	for i, v := range values {
		if v != 0 {
			line[i] = Tile{ID: TileID(i + 1), Value: v}
		}
	}
	return line
}

func lineValues(line [BoardSize]Tile) [BoardSize]int {
	var out [BoardSize]int
	for i, t := range line {
		out[i] = t.Value
	}
	return out
}

func TestSlideLineMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not chain into a larger one",
			input:    [4]int{4, 4, 8, 16},
			expected: [4]int{8, 8, 16, 0},
			score:    8,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "512 pair scores 1024",
			input:    [4]int{512, 0, 512, 0},
			expected: [4]int{1024, 0, 0, 0},
			score:    1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, score := slideLine(lineOf(tt.input))
			if got := lineValues(result); got != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeft(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := [4][4]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, res := Slide(board, DirLeft)

	if result.Values() != expected {
		t.Errorf("Slide left: got\n%v\nwant\n%v", result, FromValues(expected))
	}
	if !res.Changed {
		t.Error("Slide left should indicate board changed")
	}
	if res.ScoreDelta != 4+8+4+4 {
		t.Errorf("Slide left score = %d, want %d", res.ScoreDelta, 20)
	}
	consumed := 0
	for _, e := range res.Events {
		if e.Consumed() {
			consumed++
		}
	}
	if consumed != 4 {
		t.Errorf("consumed tiles = %d, want 4", consumed)
	}
}

func TestSlideRight(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := [4][4]int{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, res := Slide(board, DirRight)

	if result.Values() != expected {
		t.Errorf("Slide right: got\n%v\nwant\n%v", result, FromValues(expected))
	}
	if !res.Changed {
		t.Error("Slide right should indicate board changed")
	}
}

func TestSlideUp(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	expected := [4][4]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, res := Slide(board, DirUp)

	if result.Values() != expected {
		t.Errorf("Slide up: got\n%v\nwant\n%v", result, FromValues(expected))
	}
	if !res.Changed {
		t.Error("Slide up should indicate board changed")
	}
}

func TestSlideDown(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	})

	expected := [4][4]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, res := Slide(board, DirDown)

	if result.Values() != expected {
		t.Errorf("Slide down: got\n%v\nwant\n%v", result, FromValues(expected))
	}
	if !res.Changed {
		t.Error("Slide down should indicate board changed")
	}
}

func TestSlideTracksTileIdentity(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 0, 0, 2},
	})
	survivor := board.At(Pos{0, 0}).ID
	consumed := board.At(Pos{0, 3}).ID

	result, res := Slide(board, DirLeft)

	if got := result.At(Pos{0, 0}); got.ID != survivor || got.Value != 4 {
		t.Errorf("cell (0,0) = %+v, want survivor %d with value 4", got, survivor)
	}
	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(res.Events), res.Events)
	}

	for _, e := range res.Events {
		switch e.Tile {
		case survivor:
			if e.Kind != EventMerged || e.Consumed() || e.Value != 4 {
				t.Errorf("survivor event = %+v", e)
			}
			if e.From != (Pos{0, 0}) || e.To != (Pos{0, 0}) {
				t.Errorf("survivor should stay at (0,0), got %v -> %v", e.From, e.To)
			}
		case consumed:
			if !e.Consumed() || e.Into != survivor || e.Value != 2 {
				t.Errorf("consumed event = %+v", e)
			}
			if e.From != (Pos{0, 3}) || e.To != (Pos{0, 0}) {
				t.Errorf("consumed tile should travel (0,3) -> (0,0), got %v -> %v", e.From, e.To)
			}
		default:
			t.Errorf("unexpected tile %d in events", e.Tile)
		}
	}

	// Consumed identity is gone from the board
	for r := range BoardSize {
		for c := range BoardSize {
			if result.At(Pos{r, c}).ID == consumed {
				t.Errorf("consumed tile %d still on board at (%d,%d)", consumed, r, c)
			}
		}
	}
}

func TestSlideEventsCoverEveryTile(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 4, 0, 0},
		{0, 8, 8, 0},
		{16, 0, 0, 2},
		{0, 0, 0, 0},
	})

	for _, dir := range Directions {
		_, res := Slide(board, dir)
		if len(res.Events) != board.TileCount() {
			t.Errorf("%v: %d events for %d tiles", dir, len(res.Events), board.TileCount())
		}
		seen := make(map[TileID]bool)
		for _, e := range res.Events {
			if seen[e.Tile] {
				t.Errorf("%v: tile %d has two events", dir, e.Tile)
			}
			seen[e.Tile] = true
		}
	}
}

func TestScoreDeltaEqualsMergedValues(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	board := NewBoard(rng)

	for i := range 200 {
		dir := Directions[i%len(Directions)]
		next, res := ApplyMove(board, dir, rng)

		sum, merges := 0, 0
		for _, e := range res.Events {
			switch {
			case e.Consumed():
				merges++
			case e.Kind == EventMerged:
				sum += e.Value
			}
		}
		if res.ScoreDelta != sum {
			t.Fatalf("move %d: ScoreDelta = %d, merged values sum to %d", i, res.ScoreDelta, sum)
		}
		if merges == 0 && res.ScoreDelta != 0 {
			t.Fatalf("move %d: no merges but ScoreDelta = %d", i, res.ScoreDelta)
		}

		if DetectState(next, DefaultTarget) != core.StatePlaying {
			break
		}
		board = next
	}
}

func TestApplyMoveScenarios(t *testing.T) {
	tests := []struct {
		name    string
		row     [4]int
		want    [4]int
		score   int
		changed bool
	}{
		{"pair then four", [4]int{2, 2, 4, 0}, [4]int{4, 4, 0, 0}, 4, true},
		{"pair across gap", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, 4, true},
		{"no move possible", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := FromValues([4][4]int{tt.row})
			rng := rand.New(rand.NewSource(1))

			slid, _ := Slide(board, DirLeft)
			if got := slid.Values()[0]; got != tt.want {
				t.Errorf("row after move = %v, want %v", got, tt.want)
			}

			next, res := ApplyMove(board, DirLeft, rng)
			if res.ScoreDelta != tt.score {
				t.Errorf("ScoreDelta = %d, want %d", res.ScoreDelta, tt.score)
			}
			if res.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", res.Changed, tt.changed)
			}

			if !tt.changed {
				if res.Spawned != nil {
					t.Error("no-op move must not spawn")
				}
				if next != board {
					t.Error("no-op move must return the input board")
				}
			}
		})
	}
}

func TestSpawnOnlyWhenChanged(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	boards := [][4][4]int{
		{{2, 2, 0, 0}, {0, 4, 0, 0}},
		{{2, 4, 8, 16}},
		{{0, 0, 0, 2}, {0, 0, 0, 4}, {0, 0, 0, 8}, {0, 0, 0, 16}},
		{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 0}},
	}

	for _, vals := range boards {
		board := FromValues(vals)
		for _, dir := range Directions {
			slid, _ := Slide(board, dir)
			next, res := ApplyMove(board, dir, rng)

			if !res.Changed {
				if res.Spawned != nil || next.TileCount() != board.TileCount() {
					t.Errorf("%v on\n%v\nspawned on a no-op", dir, board)
				}
				continue
			}

			if res.Spawned == nil {
				t.Fatalf("%v on\n%v\nchanged but did not spawn", dir, board)
			}
			sp := *res.Spawned
			if sp.Value != 2 && sp.Value != 4 {
				t.Errorf("spawned value %d, want 2 or 4", sp.Value)
			}
			if !slid.At(sp.To).Empty() {
				t.Errorf("spawned on %v which was occupied after the slide", sp.To)
			}
			if next.TileCount() != slid.TileCount()+1 {
				t.Errorf("tile count %d, want %d", next.TileCount(), slid.TileCount()+1)
			}
			if got := next.At(sp.To); got.ID != sp.Tile || got.Value != sp.Value {
				t.Errorf("board cell %v = %+v, want spawned tile %+v", sp.To, got, sp)
			}
		}
	}
}

func TestNoOpIsIdempotent(t *testing.T) {
	boards := [][4][4]int{
		{{4, 2, 0, 0}},
		{{2, 4, 8, 16}, {4, 8, 16, 32}},
		{{2, 0, 0, 0}, {4, 0, 0, 0}, {8, 0, 0, 0}, {2, 0, 0, 0}},
	}

	for _, vals := range boards {
		board := FromValues(vals)
		for _, dir := range Directions {
			once, res := Slide(board, dir)
			if res.Changed {
				continue
			}
			twice, res2 := Slide(once, dir)
			if res2.Changed || twice.Values() != board.Values() {
				t.Errorf("%v: repeated no-op changed the board\n%v", dir, twice)
			}
		}
	}
}

func TestNewBoardSpawnsTwoTiles(t *testing.T) {
	for seed := range int64(20) {
		b := NewBoard(rand.New(rand.NewSource(seed)))
		if b.TileCount() != 2 {
			t.Fatalf("seed %d: NewBoard has %d tiles, want 2", seed, b.TileCount())
		}
		for r := range BoardSize {
			for c := range BoardSize {
				if v := b.Value(r, c); v != 0 && v != 2 && v != 4 {
					t.Errorf("seed %d: initial tile %d, want 2 or 4", seed, v)
				}
			}
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	_, _, ok := Spawn(board, rand.New(rand.NewSource(1)))
	if ok {
		t.Error("Spawn on a full board should report false")
	}
}

func TestDetectState(t *testing.T) {
	tests := []struct {
		name     string
		board    [4][4]int
		expected core.State
	}{
		{
			name: "full board without merges is lost",
			board: [4][4]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2, 4},
				{8, 16, 32, 64},
			},
			expected: core.StateLost,
		},
		{
			name: "full board with horizontal merge",
			board: [4][4]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2, 4},
				{8, 16, 32, 64},
			},
			expected: core.StatePlaying,
		},
		{
			name: "full board with vertical merge",
			board: [4][4]int{
				{2, 4, 8, 16},
				{2, 64, 128, 256},
				{512, 1024, 2, 4},
				{8, 16, 32, 64},
			},
			expected: core.StatePlaying,
		},
		{
			name: "board with empty cell",
			board: [4][4]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4},
				{8, 16, 32, 64},
			},
			expected: core.StatePlaying,
		},
		{
			name:     "target reached",
			board:    [4][4]int{{2048}},
			expected: core.StateWon,
		},
		{
			name: "win beats a stuck board",
			board: [4][4]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4},
				{8, 16, 32, 64},
			},
			expected: core.StateWon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectState(FromValues(tt.board), DefaultTarget)
			if got != tt.expected {
				t.Errorf("DetectState = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Slide with an invalid direction should panic")
		}
	}()
	Slide(FromValues([4][4]int{{2}}), Direction(42))
}

func TestFromValuesRejectsInvalidTiles(t *testing.T) {
	for _, v := range []int{1, 3, 6, -2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FromValues with tile %d should panic", v)
				}
			}()
			FromValues([4][4]int{{v}})
		}()
	}
}

func TestMaxTile(t *testing.T) {
	board := FromValues([4][4]int{
		{2, 0, 0, 0},
		{0, 256, 0, 0},
		{0, 0, 8, 0},
	})
	if got := MaxTile(board); got != 256 {
		t.Errorf("MaxTile = %d, want 256", got)
	}
	if CanMove(board) != true {
		t.Error("board with empty cells should allow moves")
	}
}

func TestSpawnDistribution(t *testing.T) {
	const trials = 8000
	rng := rand.New(rand.NewSource(2048))

	var fours int
	var cells [BoardSize][BoardSize]int
	for range trials {
		_, ev, ok := Spawn(Board{}, rng)
		if !ok {
			t.Fatal("spawn on an empty board failed")
		}
		if ev.Value == 4 {
			fours++
		}
		cells[ev.To.Row][ev.To.Col]++
	}

	share := float64(fours) / trials
	if share < 0.08 || share > 0.12 {
		t.Errorf("share of 4s = %.3f, want about 0.10", share)
	}

	want := float64(trials) / (BoardSize * BoardSize)
	for r := range BoardSize {
		for c := range BoardSize {
			if got := float64(cells[r][c]); got < want*0.75 || got > want*1.25 {
				t.Errorf("cell (%d,%d) picked %d times, want about %.0f", r, c, cells[r][c], want)
			}
		}
	}
}

func TestSpawnPicksOnlyEmptyCells(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	board := FromValues([4][4]int{
		{2, 4, 2, 4},
		{4, 0, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	})

	counts := map[Pos]int{}
	for range 2000 {
		_, ev, ok := Spawn(board, rng)
		if !ok {
			t.Fatal("spawn failed with empty cells left")
		}
		counts[ev.To]++
	}

	if len(counts) != 2 {
		t.Fatalf("spawned on %d distinct cells, want 2: %v", len(counts), counts)
	}
	for _, p := range []Pos{{1, 1}, {2, 2}} {
		if n := counts[p]; n < 850 || n > 1150 {
			t.Errorf("cell %v picked %d of 2000 times, want about 1000", p, n)
		}
	}
}

func TestCanMoveMatchesSlide(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := range 500 {
		var vals [4][4]int
		for r := range BoardSize {
			for c := range BoardSize {
				vals[r][c] = 1 << (1 + rng.Intn(5))
			}
		}
		if i%3 == 0 {
			vals[rng.Intn(BoardSize)][rng.Intn(BoardSize)] = 0
		}
		board := FromValues(vals)

		slides := false
		for _, dir := range Directions {
			if _, res := Slide(board, dir); res.Changed {
				slides = true
			}
		}
		if got := CanMove(board); got != slides {
			t.Fatalf("CanMove = %v, slide changes = %v for\n%v", got, slides, board)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		a    core.Action
		want Direction
		ok   bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionNone, 0, false},
		{core.ActionRestart, 0, false},
		{core.ActionQuit, 0, false},
	}

	for _, tt := range tests {
		got, ok := DirectionFor(tt.a)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DirectionFor(%v) = %v, %v; want %v, %v", tt.a, got, ok, tt.want, tt.ok)
		}
	}
}
