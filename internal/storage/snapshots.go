package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// SnapshotEntry is one stored board snapshot.
type SnapshotEntry struct {
	SessionID string
	Seq       int
	Label     t2048.Label
	Board     t2048.Board
	CreatedAt time.Time
}

// SnapshotLog records the snapshots of one session.
// It implements t2048.SnapshotSink.
type SnapshotLog struct {
	store     *Store
	sessionID string
	seq       int
}

var _ t2048.SnapshotSink = (*SnapshotLog)(nil)

// SnapshotLog returns a sink that appends snapshots for sessionID.
func (s *Store) SnapshotLog(sessionID string) *SnapshotLog {
	return &SnapshotLog{store: s, sessionID: sessionID}
}

// LogSnapshot stores the board under the next sequence number.
func (l *SnapshotLog) LogSnapshot(label t2048.Label, board t2048.Board) error {
	_, err := l.store.db.Exec(
		"INSERT INTO snapshots (session_id, seq, label, cells) VALUES (?, ?, ?, ?)",
		l.sessionID, l.seq, string(label), encodeCells(board),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot: %w", err)
	}
	l.seq++
	return nil
}

// Snapshots returns all snapshots of a session in recording order.
func (s *Store) Snapshots(sessionID string) ([]SnapshotEntry, error) {
	rows, err := s.db.Query(
		`SELECT session_id, seq, label, cells, created_at
		 FROM snapshots
		 WHERE session_id = ?
		 ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var entries []SnapshotEntry
	for rows.Next() {
		var e SnapshotEntry
		var label, cells string
		var createdAt any
		if err := rows.Scan(&e.SessionID, &e.Seq, &label, &cells, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan snapshot: %w", err)
		}
		e.Label = t2048.Label(label)
		e.Board, err = decodeCells(cells)
		if err != nil {
			return nil, fmt.Errorf("storage: snapshot %s/%d: %w", e.SessionID, e.Seq, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// encodeCells stores the 16 cells row-major, comma separated.
func encodeCells(board t2048.Board) string {
	parts := make([]string, 0, t2048.BoardSize*t2048.BoardSize)
	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			parts = append(parts, strconv.Itoa(board[y][x]))
		}
	}
	return strings.Join(parts, ",")
}

func decodeCells(s string) (t2048.Board, error) {
	var board t2048.Board
	parts := strings.Split(s, ",")
	if len(parts) != t2048.BoardSize*t2048.BoardSize {
		return board, fmt.Errorf("expected %d cells, got %d", t2048.BoardSize*t2048.BoardSize, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return board, fmt.Errorf("cell %d: %w", i, err)
		}
		board[i/t2048.BoardSize][i%t2048.BoardSize] = v
	}
	return board, nil
}
