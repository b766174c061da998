package t2048

import (
	"strconv"
	"strings"
)

// emptyCell is printed for cells holding 0.
const emptyCell = "."

// RenderText formats the score line and the board, one tab-terminated cell at a time.
func RenderText(board Board) string {
	var sb strings.Builder
	sb.WriteString("Score: ")
	sb.WriteString(strconv.Itoa(Score(board)))
	sb.WriteByte('\n')

	for y := range BoardSize {
		for x := range BoardSize {
			sb.WriteString(CellText(board[y][x]))
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellText returns the display text of a single cell value.
func CellText(v int) string {
	if v == 0 {
		return emptyCell
	}
	return strconv.Itoa(v)
}
