package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"pqbench/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExecute_ErrorExits(t *testing.T) {
	oldExit := exit
	oldArgs := os.Args
	defer func() {
		exit = oldExit
		os.Args = oldArgs
	}()

	var code int
	exit = func(c int) { code = c }
	os.Args = []string{"pqbench", "no-such-command"}

	Execute()
	assert.Equal(t, 1, code)
}

func TestRootCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	for _, sub := range []string{"classical", "pqc", "report", "all", "algorithms", "selftest", "config"} {
		assert.Contains(t, buf.String(), sub)
	}
}

func TestConfigCmd(t *testing.T) {
	env := newTestEnv(t, false)

	output, err := env.run("config", "--data-dir", filepath.Join(env.dir, "elsewhere"))
	require.NoError(t, err)

	var s config.Settings
	require.NoError(t, yaml.Unmarshal([]byte(output), &s))
	assert.Equal(t, filepath.Join(env.dir, "elsewhere"), s.DataDir)
	assert.Equal(t, env.graphsDir, s.GraphsDir)
	assert.Equal(t, 2, s.Classical.Iterations)
	assert.Len(t, s.Classical.Benchmarks, 3)
	assert.Equal(t, "test message for signing", s.PQC.Message)
}

func TestConfigCmd_EnvOverride(t *testing.T) {
	env := newTestEnv(t, false)
	t.Setenv("PQBENCH_PQC_ITERATIONS", "7")

	output, err := env.run("config")
	require.NoError(t, err)

	var s config.Settings
	require.NoError(t, yaml.Unmarshal([]byte(output), &s))
	assert.Equal(t, 7, s.PQC.Iterations)
}

func TestSetup_InvalidConfig(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.run("classical", "--classical-iterations", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classical.iterations must be positive")
}

func TestSetup_MissingConfigFile(t *testing.T) {
	env := newTestEnv(t, false)
	env.cfgFile = filepath.Join(env.dir, "missing.yaml")

	_, err := env.run("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLogFile(t *testing.T) {
	env := newTestEnv(t, false)
	logPath := filepath.Join(env.dir, "pqbench.log")

	_, err := env.run("algorithms", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"algorithm"`)
}
