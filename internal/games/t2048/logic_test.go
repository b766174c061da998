package t2048

import "testing"

func TestTransformRow(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
	}{
		{
			name:     "simple merge",
			input:    Row{2, 2, 0, 0},
			expected: Row{4, 0, 0, 0},
		},
		{
			name:     "leftmost pair merges first",
			input:    Row{2, 0, 2, 2},
			expected: Row{4, 2, 0, 0},
		},
		{
			name:     "merge with trailing tile",
			input:    Row{2, 2, 2, 0},
			expected: Row{4, 2, 0, 0},
		},
		{
			name:     "two pairs",
			input:    Row{2, 2, 2, 2},
			expected: Row{4, 4, 0, 0},
		},
		{
			name:     "two different pairs",
			input:    Row{2, 2, 4, 4},
			expected: Row{4, 8, 0, 0},
		},
		{
			name:     "merged tile is not merged again",
			input:    Row{2, 2, 4, 0},
			expected: Row{4, 4, 0, 0},
		},
		{
			name:     "pair after a distinct tile",
			input:    Row{4, 2, 2, 0},
			expected: Row{4, 4, 0, 0},
		},
		{
			name:     "pair behind a gap",
			input:    Row{0, 2, 2, 4},
			expected: Row{4, 4, 0, 0},
		},
		{
			name:     "large tiles",
			input:    Row{8, 8, 8, 8},
			expected: Row{16, 16, 0, 0},
		},
		{
			name:     "no merge possible",
			input:    Row{2, 4, 8, 16},
			expected: Row{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    Row{0, 0, 2, 2},
			expected: Row{4, 0, 0, 0},
		},
		{
			name:     "slide with multiple gaps",
			input:    Row{2, 0, 0, 2},
			expected: Row{4, 0, 0, 0},
		},
		{
			name:     "alternating values only compress",
			input:    Row{0, 2, 4, 2},
			expected: Row{2, 4, 2, 0},
		},
		{
			name:     "empty row",
			input:    Row{0, 0, 0, 0},
			expected: Row{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    Row{0, 4, 0, 0},
			expected: Row{4, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			result := TransformRow(tt.input)
			if result != tt.expected {
				t.Errorf("TransformRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if input != tt.input {
				t.Errorf("TransformRow modified its input: %v", tt.input)
			}
		})
	}
}

// allRows enumerates every row built from the given cell values.
func allRows(values []int) []Row {
	var rows []Row
	var build func(i int, cur Row)
	build = func(i int, cur Row) {
		if i == BoardSize {
			rows = append(rows, cur)
			return
		}
		for _, v := range values {
			cur[i] = v
			build(i+1, cur)
		}
	}
	build(0, Row{})
	return rows
}

func TestTransformRowProperties(t *testing.T) {
	for _, row := range allRows([]int{0, 2, 4, 8, 16}) {
		out := TransformRow(row)

		sumIn, sumOut := 0, 0
		nonZeroIn, nonZeroOut := 0, 0
		for i := range BoardSize {
			sumIn += row[i]
			sumOut += out[i]
			if row[i] != 0 {
				nonZeroIn++
			}
			if out[i] != 0 {
				nonZeroOut++
			}
		}

		if sumIn != sumOut {
			t.Errorf("TransformRow(%v) = %v changes the sum %d -> %d", row, out, sumIn, sumOut)
		}
		if nonZeroOut > nonZeroIn {
			t.Errorf("TransformRow(%v) = %v adds tiles", row, out)
		}

		// Zeros are contiguous at the tail.
		seenZero := false
		for i := range BoardSize {
			if out[i] == 0 {
				seenZero = true
			} else if seenZero {
				t.Errorf("TransformRow(%v) = %v has a tile after a gap", row, out)
				break
			}
		}

		// Output without adjacent equal tiles is a fixed point.
		mergeable := false
		for i := 0; i < BoardSize-1; i++ {
			if out[i] != 0 && out[i] == out[i+1] {
				mergeable = true
			}
		}
		if !mergeable && TransformRow(out) != out {
			t.Errorf("TransformRow(%v) = %v is not stable", row, out)
		}
	}
}

func TestCompressRowIdempotent(t *testing.T) {
	for _, row := range allRows([]int{0, 2, 4}) {
		once := compressRow(row)
		if twice := compressRow(once); twice != once {
			t.Errorf("compressRow(compressRow(%v)) = %v, want %v", row, twice, once)
		}
	}
}

func TestMoveLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	out := Move(board, DirLeft)

	if out.Board != expected {
		t.Errorf("Move left: got\n%v\nwant\n%v", out.Board, expected)
	}

	if !out.Changed {
		t.Error("Move left should indicate board changed")
	}
}

func TestMoveRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	out := Move(board, DirRight)

	if out.Board != expected {
		t.Errorf("Move right: got\n%v\nwant\n%v", out.Board, expected)
	}

	if !out.Changed {
		t.Error("Move right should indicate board changed")
	}
}

func TestMoveUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	out := Move(board, DirUp)

	if out.Board != expected {
		t.Errorf("Move up: got\n%v\nwant\n%v", out.Board, expected)
	}

	if !out.Changed {
		t.Error("Move up should indicate board changed")
	}
}

func TestMoveDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	out := Move(board, DirDown)

	if out.Board != expected {
		t.Errorf("Move down: got\n%v\nwant\n%v", out.Board, expected)
	}

	if !out.Changed {
		t.Error("Move down should indicate board changed")
	}
}

func TestMoveUpColumn(t *testing.T) {
	board := Board{
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
	}

	out := Move(board, DirUp)

	col := [BoardSize]int{out.Board[0][0], out.Board[1][0], out.Board[2][0], out.Board[3][0]}
	if col != [BoardSize]int{4, 2, 0, 0} {
		t.Errorf("Move up column = %v, want [4 2 0 0]", col)
	}
}

func TestMoveDownPairs(t *testing.T) {
	board := Board{
		{2, 4, 0, 0},
		{2, 4, 0, 0},
		{4, 2, 0, 0},
		{4, 2, 0, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 8, 0, 0},
		{8, 4, 0, 0},
	}

	if out := Move(board, DirDown); out.Board != expected {
		t.Errorf("Move down: got\n%v\nwant\n%v", out.Board, expected)
	}
}

func TestMoveDoesNotModifyInput(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	original := board

	Move(board, DirLeft)

	if board != original {
		t.Errorf("Move modified its input board: %v", board)
	}
}

func TestRightAlignedRowUnchanged(t *testing.T) {
	board := Board{
		{0, 2, 4, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	out := Move(board, DirRight)

	if out.Changed {
		t.Error("Move right should not change a right-aligned distinct row")
	}
	if out.Board != board {
		t.Errorf("Move right: got\n%v\nwant\n%v", out.Board, board)
	}
}

func TestLeftThenRightNotIdentity(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	left := Move(board, DirLeft)
	right := Move(left.Board, DirRight)

	if right.Board == board {
		t.Error("Merging is lossy; left then right should not restore the board")
	}
}

func TestEmptyBoardNeverChanges(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			out := Move(Board{}, dir)
			if out.Changed {
				t.Errorf("Move(%s) on empty board reported a change", dir)
			}
		})
	}
}

func TestFullBoardNoMoves(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			out := Move(board, dir)
			if out.Changed {
				t.Errorf("Move(%s) changed a locked board", dir)
			}
			if out.Board != board {
				t.Errorf("Move(%s) altered a locked board", dir)
			}
		})
	}

	if CanMove(board) {
		t.Error("CanMove should be false on a locked board")
	}
}

func TestUnknownDirection(t *testing.T) {
	board := Board{{2, 2, 0, 0}}

	out := Move(board, Direction(42))
	if out.Changed || out.Board != board {
		t.Errorf("Move with unknown direction = %+v, want unchanged", out)
	}
}

func TestCanMove(t *testing.T) {
	// Board with no empty cells and no possible merges
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if CanMove(board) {
		t.Error("Board with no moves should not be movable")
	}

	// Board with no empty cells but possible merges
	boardWithMerge := Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if !CanMove(boardWithMerge) {
		t.Error("Board with possible merge should be movable")
	}

	// Board with empty cells
	boardWithEmpty := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	if !CanMove(boardWithEmpty) {
		t.Error("Board with empty cell should be movable")
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	max := MaxTile(board)
	if max != 2048 {
		t.Errorf("MaxTile = %d, want 2048", max)
	}
}

func TestScore(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 2048},
	}

	if got := Score(board); got != 2062 {
		t.Errorf("Score = %d, want 2062", got)
	}
	if got := Score(Board{}); got != 0 {
		t.Errorf("Score of empty board = %d, want 0", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}

	// Row-major order
	if cells[0] != (Cell{X: 1, Y: 0}) || cells[1] != (Cell{X: 3, Y: 0}) || cells[2] != (Cell{X: 0, Y: 1}) {
		t.Errorf("EmptyCells not in row-major order: %v", cells[:3])
	}
}

func TestRenderText(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 16, 0},
		{0, 0, 0, 0},
	}

	want := "Score: 18\n" +
		"2\t.\t.\t.\t\n" +
		".\t.\t.\t.\t\n" +
		".\t.\t16\t.\t\n" +
		".\t.\t.\t.\t\n"

	if got := RenderText(board); got != want {
		t.Errorf("RenderText =\n%q\nwant\n%q", got, want)
	}
}
