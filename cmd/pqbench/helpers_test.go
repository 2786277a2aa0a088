package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pqbench/internal/pqcrypto"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess stands in for openssl in command tests.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) > 1 && args[1] == "fail" {
		os.Exit(1)
	}
	os.Exit(0)
}

// helperCommand returns a command string that re-runs the test binary as a
// fake external tool.
func helperCommand(args ...string) string {
	argv := append([]string{os.Args[0], "-test.run=TestHelperProcess", "--"}, args...)
	return shellquote.Join(argv...)
}

type testEnv struct {
	dir       string
	dataDir   string
	graphsDir string
	cfgFile   string
}

// newTestEnv writes a config whose classical commands run the helper process.
func newTestEnv(t *testing.T, failing bool) *testEnv {
	t.Helper()
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	env := &testEnv{
		dir:       dir,
		dataDir:   filepath.Join(dir, "data"),
		graphsDir: filepath.Join(dir, "graphs"),
		cfgFile:   filepath.Join(dir, "pqbench.yaml"),
	}

	second := helperCommand("openssl", "genrsa", "4096")
	if failing {
		second = helperCommand("fail")
	}

	var b strings.Builder
	b.WriteString("data_dir: " + env.dataDir + "\n")
	b.WriteString("graphs_dir: " + env.graphsDir + "\n")
	b.WriteString("classical:\n  iterations: 2\n  benchmarks:\n")
	for _, e := range []struct{ alg, cmd string }{
		{"RSA-2048", helperCommand("openssl", "genrsa", "2048")},
		{"RSA-4096", second},
		{"ECDSA-P256", helperCommand("openssl", "ecparam", "-name", "prime256v1", "-genkey")},
	} {
		b.WriteString("    - algorithm: " + e.alg + "\n")
		b.WriteString("      operation: keygen\n")
		b.WriteString("      command: '" + strings.ReplaceAll(e.cmd, "'", "''") + "'\n")
	}
	b.WriteString("pqc:\n  iterations: 2\n")
	require.NoError(t, os.WriteFile(env.cfgFile, []byte(b.String()), 0644))
	return env
}

func (e *testEnv) run(args ...string) (string, error) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--config", e.cfgFile, "--no-color"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func withProvider(t *testing.T, p pqcrypto.Provider) {
	t.Helper()
	old := newProvider
	newProvider = func() pqcrypto.Provider { return p }
	t.Cleanup(func() { newProvider = old })
}
