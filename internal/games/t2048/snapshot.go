package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateStuck   GameStateType = "stuck" // no direction changes the board
)

// Label names the phase of a turn a board snapshot was taken in.
type Label string

const (
	LabelInitial Label = "initial"
	LabelMerge   Label = "merge"
	LabelSpawn   Label = "spawn"
	LabelInvalid Label = "invalid"
	LabelUndo    Label = "undo"
)

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	switch l {
	case LabelInitial, LabelMerge, LabelSpawn, LabelInvalid, LabelUndo:
		return true
	}
	return false
}

// SnapshotSink receives labeled board snapshots after each phase of a turn.
type SnapshotSink interface {
	LogSnapshot(label Label, board Board) error
}

// Snapshot captures the game state for display and determinism testing.
type Snapshot struct {
	Moves   int
	Undos   int // available undo steps
	Score   int
	Board   Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if !CanMove(g.board) {
		state = StateStuck
	}

	return Snapshot{
		Moves:   g.moves,
		Undos:   g.history.Len(),
		Score:   Score(g.board),
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		State:   state,
	}
}
