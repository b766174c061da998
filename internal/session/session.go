// Package session drives a game from single-character commands, reporting
// every phase of a turn to a snapshot sink.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/storage"
)

// StuckNotice is printed when no direction can change the board.
const StuckNotice = "No moves left. Undo (u) or quit (q)."

// ScoreRecorder persists the final result of a session.
type ScoreRecorder interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// Options configures a Session. Zero values are usable.
type Options struct {
	ID     string                   // Session identifier stored with the score
	Out    io.Writer                // Board and prompt output; nil discards
	Render func(t2048.Board) string // Board formatter; nil uses t2048.RenderText
	Prompt bool                     // Print the command prompt before each read
	Logger *log.Logger              // nil discards
	Scores ScoreRecorder            // nil skips saving the final score
}

// Session owns one game and reports its progress.
type Session struct {
	id       string
	game     *t2048.Game
	sink     t2048.SnapshotSink
	logger   *log.Logger
	out      io.Writer
	render   func(t2048.Board) string
	prompt   bool
	scores   ScoreRecorder
	started  bool
	finished bool
	quit     bool
	commands int
}

// New creates a session around game. A nil sink discards snapshots.
func New(game *t2048.Game, sink t2048.SnapshotSink, opts Options) *Session {
	if sink == nil {
		sink = Discard
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Render == nil {
		opts.Render = t2048.RenderText
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Session{
		id:     opts.ID,
		game:   game,
		sink:   sink,
		logger: opts.Logger,
		out:    opts.Out,
		render: opts.Render,
		prompt: opts.Prompt,
		scores: opts.Scores,
	}
}

// Game returns the game being played.
func (s *Session) Game() *t2048.Game {
	return s.game
}

// SetOutput redirects board and prompt output. nil discards it.
func (s *Session) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.out = w
}

// Done reports whether a quit command was handled.
func (s *Session) Done() bool {
	return s.quit
}

// Commands returns the number of commands handled, quit excluded.
func (s *Session) Commands() int {
	return s.commands
}

// Start records the initial board. Later calls do nothing.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.record(t2048.LabelInitial)
}

// Handle applies one command. Returns true once the session should end.
func (s *Session) Handle(a core.Action) bool {
	s.Start()
	if s.quit {
		return true
	}

	s.logger.Debug("command", "action", a)

	switch a {
	case core.ActionQuit:
		s.quit = true
		return true

	case core.ActionUndo:
		s.commands++
		if !s.game.Undo() {
			s.logger.Debug("nothing to undo")
			return false
		}
		s.show()
		s.record(t2048.LabelUndo)
		return false
	}

	s.commands++
	if !a.IsMove() {
		s.record(t2048.LabelInvalid)
		return false
	}
	if !s.game.ApplyMove(directionFor(a)) {
		s.record(t2048.LabelInvalid)
		return false
	}

	s.record(t2048.LabelMerge)
	if cell, value, spawned := s.game.Spawn(); spawned {
		s.logger.Debug("spawned tile", "x", cell.X, "y", cell.Y, "value", value)
	}
	s.record(t2048.LabelSpawn)

	if !s.game.CanMove() {
		fmt.Fprintln(s.out, StuckNotice)
	}
	return false
}

// Run reads commands from r until quit or end of input, then finishes the session.
// Whitespace is skipped; every other character is one command.
func (s *Session) Run(r io.Reader) error {
	s.Start()
	defer s.Finish()

	br := bufio.NewReader(r)
	for !s.quit {
		s.show()
		if s.prompt {
			fmt.Fprint(s.out, core.CommandHelp)
		}

		ch, err := readCommand(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("session: cannot read command: %w", err)
		}

		s.Handle(core.ParseCommand(ch))
	}
	return nil
}

// Finish saves the final score once.
func (s *Session) Finish() {
	if s.finished {
		return
	}
	s.finished = true

	snap := s.game.Snapshot()
	s.logger.Info("session finished",
		"score", snap.Score, "max_tile", snap.MaxTile, "moves", snap.Moves, "commands", s.Commands())

	if s.scores == nil || snap.Moves == 0 {
		return
	}
	_, err := s.scores.SaveScore(storage.ScoreEntry{
		SessionID: s.id,
		Score:     snap.Score,
		MaxTile:   snap.MaxTile,
		Moves:     snap.Moves,
	})
	if err != nil {
		s.logger.Warn("score not saved", "error", err)
	}
}

// show prints the current board.
func (s *Session) show() {
	fmt.Fprint(s.out, s.render(s.game.Board()))
}

// record sends the current board to the sink. Failures are logged, not returned.
func (s *Session) record(label t2048.Label) {
	if err := s.sink.LogSnapshot(label, s.game.Board()); err != nil {
		s.logger.Warn("snapshot not recorded", "label", label, "error", err)
	}
}

// readCommand returns the next non-space rune.
func readCommand(br *bufio.Reader) (rune, error) {
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(ch) {
			return ch, nil
		}
	}
}

// directionFor maps a move action to a board direction.
func directionFor(a core.Action) t2048.Direction {
	switch a {
	case core.ActionUp:
		return t2048.DirUp
	case core.ActionDown:
		return t2048.DirDown
	case core.ActionRight:
		return t2048.DirRight
	default:
		return t2048.DirLeft
	}
}
