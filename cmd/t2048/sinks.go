package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/csvlog"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/session"
)

func init() {
	registry.Register("csv", func(env registry.Env) (t2048.SnapshotSink, error) {
		w, err := csvlog.Create(env.Config.Files.Output)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
	registry.Register("sqlite", func(env registry.Env) (t2048.SnapshotSink, error) {
		if env.Store == nil {
			return nil, errors.New("scores database is not open")
		}
		return env.Store.SnapshotLog(env.SessionID), nil
	})
}

// buildSinks creates every sink enabled in the config.
// Sinks that fail to start are logged and skipped.
func buildSinks(env registry.Env, logger *log.Logger) session.Fanout {
	var sinks session.Fanout
	for _, name := range env.Config.Storage.Sinks {
		sink, err := registry.Create(name, env)
		if err != nil {
			logger.Warn("snapshot sink disabled", "sink", name, "error", err)
			continue
		}
		logger.Debug("snapshot sink enabled", "sink", name)
		sinks = append(sinks, sink)
	}
	return sinks
}

var sinksCmd = &cobra.Command{
	Use:   "sinks",
	Short: "List snapshot sinks",
	Long:  `Shows every registered snapshot sink and whether the config enables it.`,
	Run:   runSinks,
}

func runSinks(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Printf("Warning: %v\n\n", err)
	}

	names := registry.List()
	if len(names) == 0 {
		fmt.Println("No sinks available.")
		return
	}

	fmt.Println("Snapshot sinks:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Enabled")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-------")

	for _, name := range names {
		enabled := "no"
		if cfg.HasSink(name) {
			enabled = "yes"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, name, enabled)
	}

	fmt.Println()
	fmt.Println("Enable sinks with 'storage.sinks' in the config, T2048_SINKS, or 'play --sinks'.")
}
