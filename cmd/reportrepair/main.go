package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reportrepair/internal/config"
	"reportrepair/internal/diagnose"
	"reportrepair/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	target      int32
	noSelfPairs bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reportrepair",
	Short: "Find expense report entries that sum to a target",
	Long: `reportrepair reads a report of integers (one per line, optionally
comma separated), finds every pair of entries that sums to the target
(2020 by default) and prints the product of the first pair.

Run without arguments to solve report.csv in the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "reportrepair.yaml", "Config file (missing file = defaults)")
	rootCmd.PersistentFlags().Int32VarP(&target, "target", "t", 2020, "Sum the pair must reach")
	rootCmd.PersistentFlags().BoolVar(&noSelfPairs, "no-self-pairs", false, "Never pair an entry with itself")

	solveCmd.Flags().BoolVar(&recordRun, "record", false, "Record the run in the history database")
	watchCmd.Flags().BoolVar(&recordRun, "record", false, "Record every run in the history database")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show (0 = all)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadSettings resolves configuration (defaults < file < env < flags) and
// builds the logger.
func loadSettings(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		loaded.Report.Target = target
	}
	if flags.Changed("no-self-pairs") {
		loaded.Report.AllowSelfPairs = !noSelfPairs
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(loaded.Logging, verbose)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logging.For(logger, logging.CategoryCLI).Debug("configuration loaded",
		zap.String("config", configPath),
		zap.String("report", cfg.Report.Path),
		zap.Int32("target", cfg.Report.Target),
	)
	return nil
}

// commandContext returns the command's context, or Background for commands
// built outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// execute runs the root command and returns the process exit code. The
// logger is flushed on every path, including failed runs.
func execute(parent context.Context, args []string) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer syncLogger()

	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ce := diagnose.Classify(err)
		fmt.Fprint(rootCmd.ErrOrStderr(), ce.Format())
		return ce.Category.ExitCode()
	}
	return 0
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:]))
}
