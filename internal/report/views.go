package report

import (
	"fmt"

	"pqbench/internal/benchmark"
)

// Fixed chart file names.
const (
	KeygenAllFile = "keygen_all.png"
	KEMOpsFile    = "kem_ops.png"
	SigOpsFile    = "sig_ops.png"
)

// View is one chart derived from the loaded tables. An empty Rows means the
// chart is skipped.
type View struct {
	Name     string
	Title    string
	Filename string
	Rows     Table
	// Reason explains why Rows is empty.
	Reason string
}

// KeygenView compares keygen across every algorithm in the combined table.
func KeygenView(combined Table) View {
	rows := combined.WithOperations(benchmark.OpKeygen)
	return View{
		Name:     "keygen_all",
		Title:    "Keygen Times (All Algorithms)",
		Filename: KeygenAllFile,
		Rows:     rows,
		Reason:   "no matching rows",
	}
}

// KEMView breaks down the KEM operations of the first algorithm found among
// the keygen/encaps/decaps rows of the post-quantum table.
func KEMView(pqc Table) View {
	v := View{Name: "kem_ops", Filename: KEMOpsFile, Title: "KEM Operations"}
	rows := pqc.WithOperations(benchmark.OpKeygen, benchmark.OpEncaps, benchmark.OpDecaps)
	if len(rows) == 0 {
		v.Reason = "no KEM rows (keygen/encaps/decaps) found in pqc.csv"
		return v
	}
	alg := rows[0].Algorithm
	v.Title = fmt.Sprintf("%s KEM Operations", alg)
	v.Rows = rows.WithAlgorithm(alg)
	return v
}

// SignatureView breaks down the signature operations of the algorithm that
// owns the sign row of the post-quantum table.
func SignatureView(pqc Table) View {
	v := View{Name: "sig_ops", Filename: SigOpsFile, Title: "Signature Operations"}
	rows := pqc.WithOperations(benchmark.OpKeygen, benchmark.OpSign, benchmark.OpVerify)
	if len(rows) == 0 {
		v.Reason = "no signature rows (keygen/sign/verify) found in pqc.csv"
		return v
	}
	signs := rows.WithOperations(benchmark.OpSign)
	if len(signs) == 0 {
		v.Reason = "no sign row found in pqc.csv"
		return v
	}
	alg := signs[0].Algorithm
	v.Title = fmt.Sprintf("%s Signature Operations", alg)
	v.Rows = rows.WithAlgorithm(alg)
	return v
}

// Views builds all three views in their fixed order.
func Views(classical, pqc Table) []View {
	return []View{
		KeygenView(Concat(classical, pqc)),
		KEMView(pqc),
		SignatureView(pqc),
	}
}
