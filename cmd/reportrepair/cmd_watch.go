package main

import (
	"context"

	"reportrepair/internal/logging"
	"reportrepair/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd re-solves a report whenever it changes
var watchCmd = &cobra.Command{
	Use:   "watch [report]",
	Short: "Solve a report now and again every time it changes",
	Long: `Solves the report, then watches it and solves it again after each change
settles (watch.debounce). A report that fails to solve is logged and the
watch continues. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	log := logging.For(logger, logging.CategoryWatch)

	path := cfg.Report.Path
	if len(args) == 1 {
		path = args[0]
	}

	out := cmd.OutOrStdout()
	handler := func(ctx context.Context, p string) error {
		return solveOne(ctx, out, p)
	}

	w, err := watch.New(path, cfg.GetWatchDebounce(), handler, log)
	if err != nil {
		return err
	}

	if err := handler(ctx, w.Path()); err != nil {
		log.Warn("initial run failed", zap.String("path", w.Path()), zap.Error(err))
	}

	if err := w.Run(ctx); err != nil {
		return err
	}

	stats := w.Stats()
	log.Info("watch finished",
		zap.Int("events", stats.Events),
		zap.Int("runs", stats.Runs),
		zap.Int("errors", stats.Errors),
	)
	return nil
}
