package t2048

// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// RandSource is the randomness a Spawner draws from.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Spawner places new tiles on a board.
type Spawner struct {
	rng        RandSource
	spawn4Prob float64
}

// NewSpawner creates a spawner with the default 4-tile probability.
func NewSpawner(rng RandSource) *Spawner {
	return &Spawner{rng: rng, spawn4Prob: DefaultSpawn4Prob}
}

// WithSpawn4Prob returns the spawner with a different 4-tile probability.
func (s *Spawner) WithSpawn4Prob(p float64) *Spawner {
	s.spawn4Prob = p
	return s
}

// Spawn places a 2 or 4 in a random empty cell of board.
// Returns the chosen cell, the value written, and false if the board was full.
func (s *Spawner) Spawn(board *Board) (Cell, int, bool) {
	emptyCells := EmptyCells(*board)
	if len(emptyCells) == 0 {
		return Cell{}, 0, false
	}

	cell := emptyCells[s.rng.Intn(len(emptyCells))]

	value := 2
	if s.rng.Float64() < s.spawn4Prob {
		value = 4
	}

	board[cell.Y][cell.X] = value
	return cell, value, true
}
