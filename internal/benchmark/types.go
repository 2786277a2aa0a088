package benchmark

import (
	"fmt"
	"time"
)

// Family classifies an algorithm as conventional or post-quantum.
type Family string

const (
	FamilyClassical Family = "classical"
	FamilyPQC       Family = "pqc"
)

// Operation is one of the timed cryptographic operation kinds.
type Operation string

const (
	OpKeygen Operation = "keygen"
	OpEncaps Operation = "encaps"
	OpDecaps Operation = "decaps"
	OpSign   Operation = "sign"
	OpVerify Operation = "verify"
)

// ParseFamily validates a family name read from disk or config.
func ParseFamily(s string) (Family, error) {
	switch f := Family(s); f {
	case FamilyClassical, FamilyPQC:
		return f, nil
	}
	return "", fmt.Errorf("unknown family %q", s)
}

// ParseOperation validates an operation name read from disk or config.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OpKeygen, OpEncaps, OpDecaps, OpSign, OpVerify:
		return op, nil
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Record is a single benchmark measurement: the mean wall-clock time of a
// batch of trials for one algorithm/operation pair.
type Record struct {
	Family    Family    `json:"family" yaml:"family"`
	Algorithm string    `json:"algorithm" yaml:"algorithm"`
	Operation Operation `json:"operation" yaml:"operation"`
	AvgTimeS  float64   `json:"avg_time_s" yaml:"avg_time_s"`
}

// Observer receives every individual trial duration. Metrics collectors
// implement it; a nil Observer is allowed wherever one is accepted.
type Observer interface {
	ObserveTrial(family, algorithm, operation string, elapsed time.Duration)
}
