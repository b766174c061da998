package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/csvlog"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/session"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagInput    string
	flagOutput   string
	flagSinks    string
	flagTUI      bool
	flagNoScores bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game from the initial board in the input CSV file.

Commands are single characters read from stdin:
  w  - Up
  a  - Left
  s  - Down
  d  - Right
  u  - Undo
  q  - Quit

Whitespace between commands is ignored, so "aawwddss" is eight moves.
With --tui the game runs full screen and also accepts the arrow keys.

Every board is written to the snapshot log labeled initial, merge,
spawn, invalid or undo.

Examples:
  t2048 play
  t2048 play --input start.csv --output run.csv
  echo "dddsq" | t2048 play --seed 7
  t2048 play --tui --sinks csv,sqlite`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagInput, "input", "", "Initial board CSV (default: game_input.csv)")
	playCmd.Flags().StringVar(&flagOutput, "output", "", "Snapshot log CSV (default: game_output.csv)")
	playCmd.Flags().StringVar(&flagSinks, "sinks", "", "Comma separated snapshot sinks (csv, sqlite)")
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Play full screen")
	playCmd.Flags().BoolVar(&flagNoScores, "no-scores", false, "Do not save the final score")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Files.Input = flagInput
	}
	if flags.Changed("output") {
		cfg.Files.Output = flagOutput
	}
	if flags.Changed("sinks") {
		cfg.Storage.Sinks = config.SplitList(flagSinks)
	}
	if flagNoScores {
		cfg.Storage.SaveScores = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, name := range cfg.Storage.Sinks {
		if !registry.Exists(name) {
			fmt.Fprintf(os.Stderr, "Error: unknown sink %q\n", name)
			fmt.Fprintln(os.Stderr, "Run 't2048 sinks' to see available sinks.")
			os.Exit(1)
		}
	}

	logger := newLogger(cfg)

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if flagTUI && !interactive {
		fmt.Fprintln(os.Stderr, "Error: --tui needs a terminal on stdin and stdout")
		os.Exit(1)
	}

	// A missing input file starts from an empty board
	board, err := csvlog.LoadBoard(cfg.Files.Input)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("input file not found, starting with an empty board", "path", cfg.Files.Input)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := cfg.Runtime()
	spawner := t2048.NewSpawner(rt.NewRand()).WithSpawn4Prob(rt.Spawn4Prob)
	game := t2048.New(board, spawner)
	sessionID := uuid.NewString()

	// Open score storage
	var store *storage.Store
	if cfg.HasSink("sqlite") || cfg.Storage.SaveScores {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			// Continue without storage - game still works
			logger.Warn("could not open scores database", "error", err)
			store = nil
		}
	}

	sinks := buildSinks(registry.Env{Config: cfg, Store: store, SessionID: sessionID}, logger)

	opts := session.Options{
		ID:     sessionID,
		Logger: logger,
	}
	// Full screen mode draws its own board
	if !flagTUI {
		opts.Out = os.Stdout
		opts.Prompt = interactive
		if interactive {
			opts.Render = tui.StyledText
		}
	}
	if store != nil && cfg.Storage.SaveScores {
		opts.Scores = store
	}

	logger.Debug("session started", "id", sessionID, "seed", cfg.Game.Seed)
	sess := session.New(game, sinks, opts)

	// Run the game
	var runErr error
	if flagTUI {
		runErr = tui.Run(sess)
	} else {
		runErr = sess.Run(os.Stdin)
	}

	// Close sinks before the store they may write to
	if err := sinks.Close(); err != nil {
		logger.Warn("could not close snapshot sinks", "error", err)
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
