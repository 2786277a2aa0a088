package main

import (
	"fmt"

	"pqbench/internal/report"

	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Render bar charts from classical.csv and pqc.csv",
		Long: `Loads both result files and renders up to three charts into the graphs
directory: keygen_all.png (keygen across all algorithms), kem_ops.png
(the KEM's operations) and sig_ops.png (the signature algorithm's
operations). A chart without data is skipped; a chart that fails to render
does not stop the others, but the command then exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd)
		},
	}
}

func (a *app) runReport(cmd *cobra.Command) error {
	s := a.settings
	classical, err := report.Load(s.ClassicalCSV())
	if err != nil {
		return err
	}
	pqc, err := report.Load(s.PQCCSV())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Classical data:")
	fmt.Fprintln(out, renderRecords(classical))
	fmt.Fprintln(out, "\nPQC data:")
	fmt.Fprintln(out, renderRecords(pqc))
	fmt.Fprintln(out)

	gen := report.NewGenerator(s.GraphsDir, newRenderer())
	outcomes, err := gen.Generate(report.Views(classical, pqc))
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		a.metrics.TrackChart(o.View, string(o.Status))
		switch o.Status {
		case report.StatusRendered:
			fmt.Fprintf(out, "%s Saved plot: %s\n", okStyle.Render("[OK]"), o.Path)
		case report.StatusSkipped:
			fmt.Fprintf(out, "%s %s: %s\n", skipStyle.Render("[SKIP]"), o.Title, o.Reason)
		case report.StatusFailed:
			fmt.Fprintf(out, "%s %s: %v\n", failStyle.Render("[FAIL]"), o.Title, o.Err)
		}
	}
	fmt.Fprintln(out, "\nDone.")

	return report.Failures(outcomes)
}
