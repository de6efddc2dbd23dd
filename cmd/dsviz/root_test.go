package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "dsviz.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("random:\n  seed: 3\n"), 0o600))

	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))
	err := root.Execute()

	return out.String(), err
}

func TestRoot_ScriptFromStdin(t *testing.T) {
	out, err := execute(t, "insert 2\ninsert 1\nshow\n", "avl", "--instant")
	require.NoError(t, err)
	assert.Equal(t, "ok insert 2\nok insert 1\n2 (h=2, b=1)\n    1 (h=1, b=0)\n", out)
}

func TestRoot_ScriptFile(t *testing.T) {
	script := filepath.Join(t.TempDir(), "demo.dsv")
	require.NoError(t, os.WriteFile(script, []byte("edge 1 2 5\nmst\n"), 0o600))

	out, err := execute(t, "", "graph", "--script", script)
	require.NoError(t, err)
	assert.Contains(t, out, "ok edge 1-2 (5)\n")
	assert.Contains(t, out, "idle 0/1")
}

func TestRoot_ExecOnly(t *testing.T) {
	out, err := execute(t, "insert 99\n", "list", "-e", "insert 4", "-e", "show")
	require.NoError(t, err)
	assert.Equal(t, "ok insert 4\nhead -> 4 -> nil\n", out)
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "insert 1\nkruskal\n", "hash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = execute(t, "", "avl", "--script", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dsviz dev")
}
