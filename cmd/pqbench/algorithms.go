package main

import (
	"fmt"
	"io"

	"pqbench/internal/benchmark"

	"github.com/spf13/cobra"
)

func newAlgorithmsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List enabled post-quantum algorithms and the ones pqc would pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := a.newPQCRunner()
			out := cmd.OutOrStdout()

			kems := runner.Provider.EnabledKEMs()
			sigs := runner.Provider.EnabledSignatures()
			kem, sig, err := runner.Choose()
			if err != nil {
				return err
			}

			printAlgorithms(out, "Enabled KEM algorithms:", kems, kem)
			fmt.Fprintln(out)
			printAlgorithms(out, "Enabled signature algorithms:", sigs, sig)
			return nil
		},
	}
	addPreferenceFlags(cmd.Flags())
	return cmd
}

func printAlgorithms(out io.Writer, heading string, names []string, chosen benchmark.Selection) {
	fmt.Fprintln(out, heading)
	for _, name := range names {
		if name == chosen.Algorithm {
			fmt.Fprintf(out, "  * %s\n", selectedStyle.Render(name))
			continue
		}
		fmt.Fprintf(out, "    %s\n", name)
	}
	if !chosen.Preferred {
		fmt.Fprintf(out, "[INFO] No preferred name found; using first enabled: %s\n", chosen.Algorithm)
	}
}
