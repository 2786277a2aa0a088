package config

import (
	"fmt"
	"strings"

	"pqbench/internal/benchmark"

	"github.com/kballard/go-shellquote"
)

// Validate checks every setting and reports all problems at once.
func (s *Settings) Validate() error {
	var errors []string

	if strings.TrimSpace(s.DataDir) == "" {
		errors = append(errors, "data_dir must not be empty")
	}
	if strings.TrimSpace(s.GraphsDir) == "" {
		errors = append(errors, "graphs_dir must not be empty")
	}
	if s.Classical.Iterations < 1 {
		errors = append(errors, fmt.Sprintf("classical.iterations must be positive, got: %d", s.Classical.Iterations))
	}
	if s.PQC.Iterations < 1 {
		errors = append(errors, fmt.Sprintf("pqc.iterations must be positive, got: %d", s.PQC.Iterations))
	}

	if len(s.Classical.Benchmarks) == 0 {
		errors = append(errors, "classical.benchmarks must list at least one command")
	}
	for i, e := range s.Classical.Benchmarks {
		if _, err := e.toBenchmark(); err != nil {
			errors = append(errors, fmt.Sprintf("classical.benchmarks[%d]: %v", i, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}

// ClassicalBenchmarks converts the configured entries, in order.
func (s *Settings) ClassicalBenchmarks() ([]benchmark.ClassicalBenchmark, error) {
	out := make([]benchmark.ClassicalBenchmark, 0, len(s.Classical.Benchmarks))
	for i, e := range s.Classical.Benchmarks {
		b, err := e.toBenchmark()
		if err != nil {
			return nil, fmt.Errorf("classical.benchmarks[%d]: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (e ClassicalEntry) toBenchmark() (benchmark.ClassicalBenchmark, error) {
	if strings.TrimSpace(e.Algorithm) == "" {
		return benchmark.ClassicalBenchmark{}, fmt.Errorf("algorithm is required")
	}
	op, err := benchmark.ParseOperation(e.Operation)
	if err != nil {
		return benchmark.ClassicalBenchmark{}, err
	}
	argv, err := shellquote.Split(e.Command)
	if err != nil {
		return benchmark.ClassicalBenchmark{}, fmt.Errorf("invalid command %q: %w", e.Command, err)
	}
	if len(argv) == 0 {
		return benchmark.ClassicalBenchmark{}, fmt.Errorf("command is required")
	}
	return benchmark.ClassicalBenchmark{Algorithm: e.Algorithm, Operation: op, Argv: argv}, nil
}
