package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// tileWidth is the inner width of one rendered tile.
const tileWidth = 7

// tileColors maps tile values to background colors. Larger tiles use the last entry.
var tileColors = []struct {
	value int
	bg    lipgloss.Color
	fg    lipgloss.Color
}{
	{2, lipgloss.Color("230"), lipgloss.Color("235")},
	{4, lipgloss.Color("229"), lipgloss.Color("235")},
	{8, lipgloss.Color("215"), lipgloss.Color("231")},
	{16, lipgloss.Color("209"), lipgloss.Color("231")},
	{32, lipgloss.Color("203"), lipgloss.Color("231")},
	{64, lipgloss.Color("196"), lipgloss.Color("231")},
	{128, lipgloss.Color("227"), lipgloss.Color("235")},
	{256, lipgloss.Color("226"), lipgloss.Color("235")},
	{512, lipgloss.Color("220"), lipgloss.Color("235")},
	{1024, lipgloss.Color("214"), lipgloss.Color("231")},
	{2048, lipgloss.Color("208"), lipgloss.Color("231")},
	{4096, lipgloss.Color("57"), lipgloss.Color("231")},
}

var (
	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	scoreStyle = lipgloss.NewStyle().Bold(true)
)

// tileStyle returns the style for a tile value.
func tileStyle(v int) lipgloss.Style {
	if v == 0 {
		return emptyTileStyle
	}

	c := tileColors[len(tileColors)-1]
	for _, tc := range tileColors {
		if v <= tc.value {
			c = tc
			break
		}
	}

	return lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(c.fg).
		Background(c.bg)
}

// RenderBoard draws the board as a bordered grid of colored tiles.
func RenderBoard(board t2048.Board) string {
	rows := make([]string, 0, t2048.BoardSize)
	for y := range t2048.BoardSize {
		cells := make([]string, 0, t2048.BoardSize)
		for x := range t2048.BoardSize {
			v := board[y][x]
			cells = append(cells, tileStyle(v).Render(t2048.CellText(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// StyledText renders the score line and the colored board for a terminal.
func StyledText(board t2048.Board) string {
	return fmt.Sprintf("%s\n%s\n", scoreStyle.Render(fmt.Sprintf("Score: %d", t2048.Score(board))), RenderBoard(board))
}
