package main

import (
	"os"
	"path/filepath"
	"testing"

	"pqbench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicalCmd(t *testing.T) {
	env := newTestEnv(t, false)

	output, err := env.run("classical")
	require.NoError(t, err, output)

	assert.Contains(t, output, "Running 3 classical benchmarks (2 iterations each)")
	assert.Contains(t, output, "RSA-4096")
	assert.Contains(t, output, "Saved 3 rows to "+filepath.Join(env.dataDir, "classical.csv"))

	records, err := benchmark.ReadCSV(filepath.Join(env.dataDir, "classical.csv"))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "RSA-2048", records[0].Algorithm)
	assert.Equal(t, "ECDSA-P256", records[2].Algorithm)
	for _, r := range records {
		assert.Equal(t, benchmark.FamilyClassical, r.Family)
		assert.Equal(t, benchmark.OpKeygen, r.Operation)
		assert.GreaterOrEqual(t, r.AvgTimeS, 0.0)
	}
}

func TestClassicalCmd_FailureKeepsPreviousFile(t *testing.T) {
	env := newTestEnv(t, true)

	path := filepath.Join(env.dataDir, "classical.csv")
	require.NoError(t, os.MkdirAll(env.dataDir, 0755))
	require.NoError(t, os.WriteFile(path, []byte("previous run"), 0644))

	_, err := env.run("classical")
	var cmdErr *benchmark.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "RSA-4096", cmdErr.Algorithm)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run", string(data))
}

func TestClassicalCmd_IterationsFlag(t *testing.T) {
	env := newTestEnv(t, false)
	metrics := filepath.Join(env.dir, "pqbench.prom")

	output, err := env.run("classical", "--classical-iterations", "1", "--metrics-file", metrics)
	require.NoError(t, err, output)
	assert.Contains(t, output, "(1 iterations each)")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pqbench_trial_duration_seconds_count{algorithm="RSA-2048",family="classical",operation="keygen"} 1`)
	assert.Contains(t, string(data), "pqbench_average_seconds")
}
