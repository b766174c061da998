// Package csvlog reads initial boards from CSV and records labeled board
// snapshots as CSV rows of the form "label,c00,c01,...,c33".
package csvlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// cellCount is the number of cells in one snapshot row.
const cellCount = t2048.BoardSize * t2048.BoardSize

// Writer appends snapshot rows to a CSV stream, flushing after each row.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
}

// Create truncates (or creates) the file at path and returns a Writer for it.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("csvlog: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("csvlog: cannot open %s: %w", path, err)
	}

	return &Writer{csv: csv.NewWriter(f), closer: f}, nil
}

// NewWriter returns a Writer on w. Close does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// LogSnapshot writes one row for the board and flushes it.
func (w *Writer) LogSnapshot(label t2048.Label, board t2048.Board) error {
	record := make([]string, 0, cellCount+1)
	record = append(record, string(label))
	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			record = append(record, strconv.Itoa(board[y][x]))
		}
	}

	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("csvlog: cannot write %s snapshot: %w", label, err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("csvlog: cannot flush %s snapshot: %w", label, err)
	}
	return nil
}

// Close flushes pending rows and closes the underlying file, if any.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("csvlog: flush on close: %w", err)
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
