package main

import (
	"github.com/spf13/cobra"
)

func newAllCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run the classical and post-quantum benchmarks, then the report",
		Long: `Runs 'classical', 'pqc' and 'report' one after the other. The first
failure stops the sequence, so charts are never drawn from a run that did
not complete.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.runClassical(cmd); err != nil {
				return err
			}
			if _, err := a.runPQC(cmd); err != nil {
				return err
			}
			return a.runReport(cmd)
		},
	}
	addClassicalFlags(cmd.Flags())
	addPQCFlags(cmd.Flags())
	return cmd
}
