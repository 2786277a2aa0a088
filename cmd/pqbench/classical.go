package main

import (
	"fmt"

	"pqbench/internal/benchmark"

	"github.com/spf13/cobra"
)

func newClassicalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classical",
		Short: "Time classical key generation through the external crypto CLI",
		Long: `Runs every configured classical command (RSA-2048, RSA-4096 and
ECDSA-P256 key generation with openssl by default) several times, averages
the wall-clock time and writes classical.csv. A failing command aborts the
run and leaves any previous classical.csv untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.runClassical(cmd)
			return err
		},
	}
	addClassicalFlags(cmd.Flags())
	return cmd
}

func (a *app) runClassical(cmd *cobra.Command) ([]benchmark.Record, error) {
	s := a.settings
	benches, err := s.ClassicalBenchmarks()
	if err != nil {
		return nil, err
	}
	if err := benchmark.EnsureDir(s.DataDir); err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running %d classical benchmarks (%d iterations each)\n", len(benches), s.Classical.Iterations)

	runner := benchmark.NewClassicalRunner(s.Classical.Iterations, a.metrics)
	records, err := runner.Run(cmd.Context(), benches)
	if err != nil {
		return nil, err
	}
	a.recordAverages(records)

	path := s.ClassicalCSV()
	if err := benchmark.WriteCSV(path, records); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, renderRecords(records))
	fmt.Fprintf(out, "Saved %d rows to %s\n", len(records), path)
	return records, nil
}
