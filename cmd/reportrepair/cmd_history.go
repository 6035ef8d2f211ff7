package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"reportrepair/internal/history"
	"reportrepair/internal/logging"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recorded runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs, newest first",
	Long: `Shows runs recorded with --record or history.enabled, read from
history.database_path (REPORTREPAIR_DB).`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Listing never creates the database.
	if _, err := os.Stat(cfg.History.DatabasePath); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	store, err := history.Open(cfg.History.DatabasePath, logging.For(logger, logging.CategoryHistory))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(commandContext(cmd), historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}
	renderRuns(out, runs)
	return nil
}
