package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "pq-project", "data"), s.DataDir)
	assert.Equal(t, filepath.Join(home, "pq-project", "graphs"), s.GraphsDir)
	assert.Equal(t, filepath.Join(home, "pq-project", "data", "classical.csv"), s.ClassicalCSV())
	assert.Equal(t, filepath.Join(home, "pq-project", "data", "pqc.csv"), s.PQCCSV())
	assert.Equal(t, 5, s.Classical.Iterations)
	assert.Equal(t, 50, s.PQC.Iterations)
	assert.Equal(t, []string{"Kyber768", "ML-KEM-768", "Kyber512", "ML-KEM-512"}, s.PQC.KEMPreference)
	assert.Equal(t, []string{"ML-DSA-87", "ML-DSA-65", "ML-DSA-44", "Dilithium3", "Dilithium2"}, s.PQC.SignaturePreference)
	assert.Equal(t, "test message for signing", s.PQC.Message)
	require.Len(t, s.Classical.Benchmarks, 3)
	assert.Equal(t, ClassicalEntry{Algorithm: "ECDSA-P256", Operation: "keygen", Command: "openssl ecparam -name prime256v1 -genkey"}, s.Classical.Benchmarks[2])
	assert.NoError(t, s.Validate())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
data_dir: /tmp/bench/data
classical:
  iterations: 2
  benchmarks:
    - algorithm: Ed25519
      operation: keygen
      command: "openssl genpkey -algorithm ed25519"
pqc:
  iterations: 10
  kem_preference: [ML-KEM-1024]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bench/data", s.DataDir)
	assert.Equal(t, 2, s.Classical.Iterations)
	require.Len(t, s.Classical.Benchmarks, 1)
	assert.Equal(t, "Ed25519", s.Classical.Benchmarks[0].Algorithm)
	assert.Equal(t, 10, s.PQC.Iterations)
	assert.Equal(t, []string{"ML-KEM-1024"}, s.PQC.KEMPreference)
	// Untouched keys keep their defaults.
	assert.Equal(t, "test message for signing", s.PQC.Message)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PQBENCH_DATA_DIR", "/env/data")
	t.Setenv("PQBENCH_PQC_ITERATIONS", "7")

	s, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "/env/data", s.DataDir)
	assert.Equal(t, 7, s.PQC.Iterations)
}

func TestLoad_Flags(t *testing.T) {
	t.Setenv("PQBENCH_GRAPHS_DIR", "/env/graphs")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data-dir", "", "")
	fs.String("graphs-dir", "", "")
	fs.Int("classical-iterations", 0, "")
	fs.StringSlice("kem-preference", nil, "")
	require.NoError(t, fs.Parse([]string{"--data-dir", "/flag/data", "--classical-iterations", "3", "--kem-preference", "Kyber512,ML-KEM-512"}))

	s, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "/flag/data", s.DataDir)
	// Unchanged flags do not shadow the environment.
	assert.Equal(t, "/env/graphs", s.GraphsDir)
	assert.Equal(t, 3, s.Classical.Iterations)
	assert.Equal(t, []string{"Kyber512", "ML-KEM-512"}, s.PQC.KEMPreference)
}
