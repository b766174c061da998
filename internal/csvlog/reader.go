package csvlog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Entry is one labeled snapshot read back from a log.
type Entry struct {
	Label t2048.Label
	Board t2048.Board
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	return cr
}

// parseCell converts a cell to a tile value from its leading integer, so
// "2abc" reads as 2. Cells without a leading integer and negative cells become 0.
func parseCell(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ReadBoard reads up to four lines of up to four cells.
// Every line is one board row, so a blank line is an empty row.
// Missing rows and cells stay empty; extra ones are ignored.
func ReadBoard(r io.Reader) (t2048.Board, error) {
	var board t2048.Board
	sc := bufio.NewScanner(r)

	for y := 0; y < t2048.BoardSize && sc.Scan(); y++ {
		record, err := newReader(strings.NewReader(sc.Text())).Read()
		if errors.Is(err, io.EOF) {
			continue
		}
		if err != nil {
			return board, fmt.Errorf("csvlog: cannot read board row %d: %w", y+1, err)
		}
		for x := 0; x < t2048.BoardSize && x < len(record); x++ {
			board[y][x] = parseCell(record[x])
		}
	}
	if err := sc.Err(); err != nil {
		return board, fmt.Errorf("csvlog: cannot read board: %w", err)
	}

	return board, nil
}

// LoadBoard reads the initial board from the file at path.
// The returned error wraps fs.ErrNotExist when the file is missing.
func LoadBoard(path string) (t2048.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return t2048.Board{}, fmt.Errorf("csvlog: cannot open board %s: %w", path, err)
	}
	defer f.Close()

	return ReadBoard(f)
}

// ReadLog reads every snapshot row.
// Rows with fewer than 17 fields or an unknown label are skipped.
func ReadLog(r io.Reader) ([]Entry, error) {
	cr := newReader(r)

	var entries []Entry
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvlog: cannot read log: %w", err)
		}
		if len(record) < cellCount+1 {
			continue
		}
		label := t2048.Label(strings.TrimSpace(record[0]))
		if !label.Valid() {
			continue
		}

		e := Entry{Label: label}
		for i := 0; i < cellCount; i++ {
			e.Board[i/t2048.BoardSize][i%t2048.BoardSize] = parseCell(record[i+1])
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// LoadLog reads every snapshot row from the file at path.
func LoadLog(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvlog: cannot open log %s: %w", path, err)
	}
	defer f.Close()

	return ReadLog(f)
}
