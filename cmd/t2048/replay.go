package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/csvlog"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/storage"
)

var flagSession string

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Print the snapshots of a recorded game",
	Long: `Print every labeled board of a recorded game in order.

Reads a CSV snapshot log, or with --session the snapshots stored
in the scores database by the sqlite sink.

Examples:
  t2048 replay game_output.csv
  t2048 replay --session 0b5c8a3e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagSession, "session", "", "Session id to read from the scores database")
}

func runReplay(cmd *cobra.Command, args []string) {
	var (
		entries []csvlog.Entry
		err     error
	)

	switch {
	case flagSession != "":
		entries, err = storedEntries(cmd, flagSession)
	case len(args) == 1:
		entries, err = csvlog.LoadLog(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Error: give a log file or --session")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No snapshots recorded.")
		return
	}

	render := t2048.RenderText
	if term.IsTerminal(int(os.Stdout.Fd())) {
		render = tui.StyledText
	}

	for i, e := range entries {
		fmt.Printf("#%d %s\n", i+1, e.Label)
		fmt.Print(render(e.Board))
		fmt.Println()
	}
}

// storedEntries reads the snapshots of one session from the database.
func storedEntries(cmd *cobra.Command, sessionID string) ([]csvlog.Entry, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	snaps, err := store.Snapshots(sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]csvlog.Entry, len(snaps))
	for i, s := range snaps {
		entries[i] = csvlog.Entry{Label: s.Label, Board: s.Board}
	}
	return entries, nil
}
