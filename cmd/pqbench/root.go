package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pqbench/internal/benchmark"
	"pqbench/internal/config"
	"pqbench/internal/pqcrypto"
	"pqbench/internal/report"
	"pqbench/internal/telemetry"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var exit = os.Exit

// newProvider allows mocking in tests.
var newProvider = func() pqcrypto.Provider { return pqcrypto.NewCirclProvider() }

// newRenderer allows mocking in tests.
var newRenderer = func() report.Renderer { return report.NewPlotRenderer() }

// app holds the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	noColor  bool
	settings *config.Settings
	metrics  *telemetry.Metrics
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pqbench",
		Short: "Benchmark classical and post-quantum cryptography",
		Long: `pqbench times classical key generation through an external CLI toolkit
(openssl by default) and post-quantum KEM and signature operations in-process,
writes the averages to CSV and renders comparison bar charts.

Typical use:
  pqbench classical   # -> <data_dir>/classical.csv
  pqbench pqc         # -> <data_dir>/pqc.csv
  pqbench report      # -> <graphs_dir>/*.png`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	fs := rootCmd.PersistentFlags()
	fs.StringVar(&a.cfgFile, "config", "", "config file (default is ./pqbench.yaml)")
	fs.String("data-dir", "", "Directory for CSV results (default $HOME/pq-project/data)")
	fs.String("graphs-dir", "", "Directory for charts (default $HOME/pq-project/graphs)")
	fs.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	fs.String("log-file", "", "Also append JSON logs to this file")
	fs.String("metrics-file", "", "Write Prometheus metrics to this file when the command finishes")
	fs.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newClassicalCmd(a),
		newPQCCmd(a),
		newReportCmd(a),
		newAllCmd(a),
		newAlgorithmsCmd(a),
		newSelftestCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func addClassicalFlags(fs *pflag.FlagSet) {
	fs.Int("classical-iterations", 0, "Runs per classical command (default 5)")
}

func addPreferenceFlags(fs *pflag.FlagSet) {
	fs.StringSlice("kem-preference", nil, "KEM names in order of preference")
	fs.StringSlice("sig-preference", nil, "Signature names in order of preference")
}

func addPQCFlags(fs *pflag.FlagSet) {
	fs.Int("pqc-iterations", 0, "Iterations per post-quantum operation (default 50)")
	fs.String("message", "", "Message signed during signature timing")
	addPreferenceFlags(fs)
}

// setup resolves configuration and installs logging and metrics.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s
	a.closeLog = telemetry.InitLogger(s.Verbose, s.LogFile)
	a.metrics = telemetry.NewMetrics()

	if a.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.closeLog != nil {
		defer a.closeLog()
	}
	if a.settings == nil || a.settings.MetricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.settings.MetricsFile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

func (a *app) recordAverages(records []benchmark.Record) {
	for _, r := range records {
		a.metrics.SetAverage(string(r.Family), r.Algorithm, string(r.Operation), r.AvgTimeS)
	}
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	// Wrap Execute in panic recovery for graceful shutdown
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pqbench --help' for usage.")
		exit(1)
	}
}
