// Package t2048 implements the 2048 board rules: row transforms, moves,
// tile spawning and undo history.
package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
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
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Row is a single row or column, oriented so index 0 is the merge side.
type Row [BoardSize]int

// Board represents a 4x4 game board. Cells hold 0 when empty.
type Board [BoardSize][BoardSize]int

// MoveOutcome is the result of applying a direction to a board.
type MoveOutcome struct {
	Changed bool
	Board   Board
}

// compressRow shifts non-zero values toward index 0, keeping their order.
func compressRow(row Row) Row {
	var result Row
	writePos := 0
	for _, v := range row {
		if v != 0 {
			result[writePos] = v
			writePos++
		}
	}
	return result
}

// mergeRow merges adjacent equal values in a single left-to-right pass.
// A merged cell is followed by a zero, so it cannot merge again.
func mergeRow(row Row) Row {
	for i := 0; i < BoardSize-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] *= 2
			row[i+1] = 0
		}
	}
	return row
}

// TransformRow compresses, merges and compresses again.
func TransformRow(row Row) Row {
	return compressRow(mergeRow(compressRow(row)))
}

// reverseRow reverses a row.
func reverseRow(row Row) Row {
	var result Row
	for i := range BoardSize {
		result[i] = row[BoardSize-1-i]
	}
	return result
}

// transformLine applies TransformRow with optional reversal.
// Returns the new line and whether it differs from the input.
func transformLine(line Row, reversed bool) (Row, bool) {
	if !reversed {
		out := TransformRow(line)
		return out, out != line
	}
	out := reverseRow(TransformRow(reverseRow(line)))
	return out, out != line
}

// moveRows transforms every row. reversed moves tiles right.
func moveRows(board Board, reversed bool) MoveOutcome {
	out := MoveOutcome{Board: board}
	for y := range BoardSize {
		newRow, changed := transformLine(Row(board[y]), reversed)
		out.Board[y] = newRow
		out.Changed = out.Changed || changed
	}
	return out
}

// moveColumns transforms every column read top to bottom. reversed moves tiles down.
func moveColumns(board Board, reversed bool) MoveOutcome {
	out := MoveOutcome{Board: board}
	for x := range BoardSize {
		var col Row
		for y := range BoardSize {
			col[y] = board[y][x]
		}

		newCol, changed := transformLine(col, reversed)
		for y := range BoardSize {
			out.Board[y][x] = newCol[y]
		}
		out.Changed = out.Changed || changed
	}
	return out
}

// Move performs a move in the given direction.
// The input board is not modified.
func Move(board Board, dir Direction) MoveOutcome {
	switch dir {
	case DirLeft:
		return moveRows(board, false)
	case DirRight:
		return moveRows(board, true)
	case DirUp:
		return moveColumns(board, false)
	case DirDown:
		return moveColumns(board, true)
	default:
		return MoveOutcome{Board: board}
	}
}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < BoardSize-1 && board[y+1][x] == val {
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
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// Score returns the sum of all tile values.
func Score(board Board) int {
	total := 0
	for y := range BoardSize {
		for x := range BoardSize {
			total += board[y][x]
		}
	}
	return total
}
