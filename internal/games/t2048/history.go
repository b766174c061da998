package t2048

// History is an unbounded LIFO of board snapshots.
type History struct {
	boards []Board
}

// Push saves a board snapshot.
func (h *History) Push(b Board) {
	h.boards = append(h.boards, b)
}

// Pop removes and returns the most recent snapshot.
// Returns false if the history is empty.
func (h *History) Pop() (Board, bool) {
	if len(h.boards) == 0 {
		return Board{}, false
	}
	last := h.boards[len(h.boards)-1]
	h.boards = h.boards[:len(h.boards)-1]
	return last, true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.boards)
}
