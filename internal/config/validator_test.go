package config

import (
	"testing"

	"pqbench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		DataDir:   "/tmp/data",
		GraphsDir: "/tmp/graphs",
		Classical: ClassicalSettings{
			Iterations: 5,
			Benchmarks: []ClassicalEntry{
				{Algorithm: "RSA-2048", Operation: "keygen", Command: "openssl genrsa 2048"},
				{Algorithm: "ECDSA-P256", Operation: "keygen", Command: `openssl ecparam -name 'prime256v1' -genkey`},
			},
		},
		PQC: PQCSettings{Iterations: 50},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validSettings().Validate())

	tests := []struct {
		name   string
		mutate func(*Settings)
		want   string
	}{
		{"empty data dir", func(s *Settings) { s.DataDir = " " }, "data_dir must not be empty"},
		{"empty graphs dir", func(s *Settings) { s.GraphsDir = "" }, "graphs_dir must not be empty"},
		{"zero classical iterations", func(s *Settings) { s.Classical.Iterations = 0 }, "classical.iterations must be positive, got: 0"},
		{"negative pqc iterations", func(s *Settings) { s.PQC.Iterations = -1 }, "pqc.iterations must be positive, got: -1"},
		{"no benchmarks", func(s *Settings) { s.Classical.Benchmarks = nil }, "at least one command"},
		{"unknown operation", func(s *Settings) { s.Classical.Benchmarks[0].Operation = "encrypt" }, `classical.benchmarks[0]: unknown operation "encrypt"`},
		{"missing algorithm", func(s *Settings) { s.Classical.Benchmarks[1].Algorithm = "" }, "classical.benchmarks[1]: algorithm is required"},
		{"empty command", func(s *Settings) { s.Classical.Benchmarks[0].Command = "  " }, "command is required"},
		{"unterminated quote", func(s *Settings) { s.Classical.Benchmarks[0].Command = `openssl "genrsa` }, "invalid command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	s := validSettings()
	s.DataDir = ""
	s.PQC.Iterations = 0
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_dir")
	assert.Contains(t, err.Error(), "pqc.iterations")
}

func TestClassicalBenchmarks(t *testing.T) {
	benches, err := validSettings().ClassicalBenchmarks()
	require.NoError(t, err)
	require.Len(t, benches, 2)
	assert.Equal(t, benchmark.ClassicalBenchmark{
		Algorithm: "RSA-2048",
		Operation: benchmark.OpKeygen,
		Argv:      []string{"openssl", "genrsa", "2048"},
	}, benches[0])
	assert.Equal(t, []string{"openssl", "ecparam", "-name", "prime256v1", "-genkey"}, benches[1].Argv)
}
