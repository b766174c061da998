package session

import (
	"errors"
	"io"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Fanout forwards every snapshot to all of its sinks.
type Fanout []t2048.SnapshotSink

// LogSnapshot writes to every sink, even if an earlier one fails.
func (f Fanout) LogSnapshot(label t2048.Label, board t2048.Board) error {
	var errs []error
	for _, s := range f {
		if err := s.LogSnapshot(label, board); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink that implements io.Closer.
func (f Fanout) Close() error {
	var errs []error
	for _, s := range f {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Discard drops every snapshot.
var Discard t2048.SnapshotSink = discard{}

type discard struct{}

func (discard) LogSnapshot(t2048.Label, t2048.Board) error { return nil }
