package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"
)

// execCommand allows mocking in tests.
var execCommand = exec.CommandContext

// ClassicalBenchmark names one external command to time.
type ClassicalBenchmark struct {
	Algorithm string
	Operation Operation
	Argv      []string
}

// ClassicalRunner times external key generation commands.
type ClassicalRunner struct {
	Iterations int
	Observer   Observer
	Clock      Clock
}

// NewClassicalRunner returns a runner that executes each command iterations times.
func NewClassicalRunner(iterations int, obs Observer) *ClassicalRunner {
	return &ClassicalRunner{Iterations: iterations, Observer: obs, Clock: time.Now}
}

// Run benchmarks every entry in order and returns one record per entry. The
// first failing command aborts the run and no records are returned.
func (r *ClassicalRunner) Run(ctx context.Context, benches []ClassicalBenchmark) ([]Record, error) {
	records := make([]Record, 0, len(benches))
	for _, b := range benches {
		slog.Info("Benchmarking classical algorithm", "algorithm", b.Algorithm, "operation", b.Operation, "iterations", r.Iterations)

		samples, err := r.timeCommand(ctx, b)
		if err != nil {
			return nil, err
		}
		avg, err := Mean(samples)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", b.Algorithm, b.Operation, err)
		}
		records = append(records, Record{
			Family:    FamilyClassical,
			Algorithm: b.Algorithm,
			Operation: b.Operation,
			AvgTimeS:  avg,
		})
	}
	return records, nil
}

func (r *ClassicalRunner) timeCommand(ctx context.Context, b ClassicalBenchmark) ([]time.Duration, error) {
	if len(b.Argv) == 0 {
		return nil, &CommandError{Algorithm: b.Algorithm, Err: fmt.Errorf("empty command")}
	}

	now := r.Clock
	if now == nil {
		now = time.Now
	}

	samples := make([]time.Duration, 0, r.Iterations)
	for i := 0; i < r.Iterations; i++ {
		cmd := execCommand(ctx, b.Argv[0], b.Argv[1:]...)
		// Key material is discarded.
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard

		elapsed, err := timeIt(now, cmd.Run)
		if err != nil {
			return nil, &CommandError{Algorithm: b.Algorithm, Argv: b.Argv, Err: err}
		}
		slog.Debug("Trial finished", "algorithm", b.Algorithm, "iteration", i+1, "elapsed", elapsed)
		if r.Observer != nil {
			r.Observer.ObserveTrial(string(FamilyClassical), b.Algorithm, string(b.Operation), elapsed)
		}
		samples = append(samples, elapsed)
	}
	return samples, nil
}
