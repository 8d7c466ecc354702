package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd(&out, &logs)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	out, logs, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sample")
	assert.Contains(t, out, "[1 2]")
	assert.Contains(t, out, "avl")
	assert.Contains(t, logs, "Replaying")

	out, _, err = execute(t, "run", "--variant", "plain", path)
	require.NoError(t, err)
	assert.Contains(t, out, "plain")
}

func TestRunCommand_Verbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	_, logs, err := execute(t, "-v", "run", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "put")
	assert.Contains(t, logs, "contains")
}

func TestRunCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.Error(t, err)

	_, _, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	_, _, err = execute(t, "run", "--variant", "splay", path)
	assert.ErrorContains(t, err, "unknown variant")
}

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	for _, sc := range demoScenarios() {
		assert.Contains(t, out, sc.Name)
	}
	assert.Contains(t, out, "[1 2 3 5 10]")

	out, _, err = execute(t, "demo", "--variant", "avl")
	require.NoError(t, err)
	assert.NotContains(t, out, "plain")
}
