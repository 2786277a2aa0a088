package main

import (
	"fmt"
	"log/slog"

	"pqbench/internal/benchmark"

	"github.com/spf13/cobra"
)

func newPQCCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pqc",
		Short: "Time post-quantum KEM and signature operations",
		Long: `Picks one KEM and one signature algorithm from the library's enabled
list using the configured preference order (falling back to the first
enabled algorithm), times keygen/encaps/decaps and keygen/sign/verify and
writes pqc.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.runPQC(cmd)
			return err
		},
	}
	addPQCFlags(cmd.Flags())
	return cmd
}

func (a *app) newPQCRunner() *benchmark.PQCRunner {
	s := a.settings
	r := benchmark.NewPQCRunner(newProvider(), s.PQC.Iterations, a.metrics)
	r.KEMPreference = s.PQC.KEMPreference
	r.SignaturePreference = s.PQC.SignaturePreference
	r.Message = []byte(s.PQC.Message)
	return r
}

func (a *app) runPQC(cmd *cobra.Command) ([]benchmark.Record, error) {
	s := a.settings
	if err := benchmark.EnsureDir(s.DataDir); err != nil {
		return nil, err
	}

	runner := a.newPQCRunner()
	slog.Debug("Enabled algorithms", "kem", runner.Provider.EnabledKEMs(), "signature", runner.Provider.EnabledSignatures())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running post-quantum benchmarks (%d iterations each)\n", s.PQC.Iterations)

	records, err := runner.Run()
	if err != nil {
		return nil, err
	}
	a.recordAverages(records)

	path := s.PQCCSV()
	if err := benchmark.WriteCSV(path, records); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, renderRecords(records))
	fmt.Fprintf(out, "[OK] Saved %d rows to %s\n", len(records), path)
	return records, nil
}
