package main

import (
	"fmt"

	"reportrepair/internal/logging"
	"reportrepair/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseCmd prints the parsed report values
var parseCmd = &cobra.Command{
	Use:   "parse [report]",
	Short: "Parse a report and print its values one per line",
	Long: `Parses the report without searching it. The output is itself a valid
report, so parsing it again yields the same values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := cfg.Report.Path
	if len(args) == 1 {
		path = args[0]
	}

	content, err := report.ReadFile(path)
	if err != nil {
		return err
	}
	values, err := report.Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logging.For(logger, logging.CategoryReport).Debug("report parsed",
		zap.String("path", path), zap.Int("values", len(values)))

	fmt.Fprintln(cmd.OutOrStdout(), report.Format(values))
	return nil
}
