package main

import (
	"errors"
	"fmt"

	"pqbench/internal/pqcrypto"

	"github.com/spf13/cobra"
)

var errSelfTestFailed = errors.New("self-test failed")

func newSelftestCmd(a *app) *cobra.Command {
	var kemName, sigName string

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run one KEM and one signature round trip",
		Long: `Generates a keypair, encapsulates and decapsulates once and reports
whether both shared secrets match together with the artifact lengths, then
signs and verifies one message. Without --kem/--sig the algorithms are
picked like 'pqc' does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := a.newPQCRunner()
			if kemName == "" || sigName == "" {
				kem, sig, err := runner.Choose()
				if err != nil {
					return err
				}
				if kemName == "" {
					kemName = kem.Algorithm
				}
				if sigName == "" {
					sigName = sig.Algorithm
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Testing KEM with:", kemName)
			kc, err := pqcrypto.CheckKEM(runner.Provider, kemName)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Shared secrets equal?", kc.SecretsEqual)
			fmt.Fprintln(out, "Public key length:", kc.PublicKeyLen, "Ciphertext length:", kc.CiphertextLen, "Secret length:", kc.SecretLen)

			fmt.Fprintln(out, "\nTesting signature with:", sigName)
			sc, err := pqcrypto.CheckSignature(runner.Provider, sigName, runner.Message)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Signature valid?", sc.Valid)
			fmt.Fprintln(out, "Public key length:", sc.PublicKeyLen, "Signature length:", sc.SignatureLen)

			if !kc.SecretsEqual || !sc.Valid {
				return errSelfTestFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kemName, "kem", "", "KEM algorithm to test")
	cmd.Flags().StringVar(&sigName, "sig", "", "Signature algorithm to test")
	cmd.Flags().String("message", "", "Message to sign")
	return cmd
}
