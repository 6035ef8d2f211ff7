package main

import (
	"context"
	"fmt"
	"io"

	"reportrepair/internal/history"
	"reportrepair/internal/logging"
	"reportrepair/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recordRun bool

// solveCmd solves one or more reports
var solveCmd = &cobra.Command{
	Use:   "solve [report...]",
	Short: "Find the pairs summing to the target and print the product",
	Long: `Parses each report, lists every candidate pair summing to the target and
prints the product of the first pair.

Several reports are solved concurrently (batch.max_concurrency) and
printed in argument order.

Examples:
  reportrepair solve
  reportrepair solve input.csv --target 3000
  reportrepair solve a.csv b.csv --record`,
	RunE: runSolve,
}

func findOptions() []report.FindOption {
	return []report.FindOption{report.WithSelfPairs(cfg.Report.AllowSelfPairs)}
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	log := logging.For(logger, logging.CategoryReport)

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.Report.Path}
	}

	log.Debug("solving reports", zap.Strings("paths", paths), zap.Int32("target", cfg.Report.Target))
	results, err := report.SolveFiles(ctx, paths, cfg.Report.Target, cfg.Batch.MaxConcurrency, findOptions()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			renderHeader(out, res.Path)
		}
		renderResult(out, res.Result)
		log.Info("report solved",
			zap.String("path", res.Path),
			zap.Int("values", len(res.Values)),
			zap.Int("pairs", len(res.Pairs)),
			zap.Int64("product", res.Product),
		)
	}

	if recordRun || cfg.History.Enabled {
		return recordResults(ctx, results)
	}
	return nil
}

// solveOne solves a single report and prints it; used by watch mode.
func solveOne(ctx context.Context, out io.Writer, path string) error {
	content, err := report.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := report.Solve(content, cfg.Report.Target, findOptions()...)
	if err != nil {
		return err
	}
	renderResult(out, res)

	if recordRun || cfg.History.Enabled {
		return recordResults(ctx, []report.FileResult{{Path: path, Result: res}})
	}
	return nil
}

func recordResults(ctx context.Context, results []report.FileResult) error {
	store, err := history.Open(cfg.History.DatabasePath, logging.For(logger, logging.CategoryHistory))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, res := range results {
		if _, err := store.Record(ctx, history.Run{
			Input:      res.Path,
			Target:     cfg.Report.Target,
			ValueCount: len(res.Values),
			PairCount:  len(res.Pairs),
			First:      res.First.First,
			Second:     res.First.Second,
			Product:    res.Product,
		}); err != nil {
			return err
		}
	}
	return nil
}
