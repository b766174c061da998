package t2048

// Game owns the current board and the undo history.
// It is not safe for concurrent use.
type Game struct {
	board   Board
	history History
	spawner *Spawner
	moves   int // successful moves, minus undone ones
}

// New creates a game seeded with the initial board.
// Negative cells are treated as empty.
func New(initial Board, spawner *Spawner) *Game {
	for y := range BoardSize {
		for x := range BoardSize {
			if initial[y][x] < 0 {
				initial[y][x] = 0
			}
		}
	}
	return &Game{
		board:   initial,
		spawner: spawner,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// ApplyMove slides the board in dir.
// On change the previous board is pushed onto the history.
// Returns whether the board changed.
func (g *Game) ApplyMove(dir Direction) bool {
	prev := g.board
	out := Move(g.board, dir)
	if !out.Changed {
		return false
	}

	g.history.Push(prev)
	g.board = out.Board
	g.moves++
	return true
}

// Spawn places a new tile on the current board.
// Callers invoke it only after a move that changed the board.
// Returns false if the board is full.
func (g *Game) Spawn() (Cell, int, bool) {
	if g.spawner == nil {
		return Cell{}, 0, false
	}
	return g.spawner.Spawn(&g.board)
}

// Undo restores the board saved before the last successful move.
// Returns false if there is nothing to undo.
func (g *Game) Undo() bool {
	prev, ok := g.history.Pop()
	if !ok {
		return false
	}
	g.board = prev
	g.moves--
	return true
}

// Score returns the sum of all tiles.
func (g *Game) Score() int {
	return Score(g.board)
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() int {
	return MaxTile(g.board)
}

// CanMove reports whether any direction would change the board.
func (g *Game) CanMove() bool {
	return CanMove(g.board)
}

// HistoryLen returns how many undo steps are available.
func (g *Game) HistoryLen() int {
	return g.history.Len()
}

// Moves returns the number of successful moves still on the history.
func (g *Game) Moves() int {
	return g.moves
}
