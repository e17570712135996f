package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/steps"
)

func history(n int) *steps.State {
	st := steps.NewState()
	for i := 1; i <= n; i++ {
		st.Add(steps.Step{Kind: steps.KindSelect, Current: i})
	}
	st.Reset()
	return st
}

func TestReplay_Commands(t *testing.T) {
	var shown []int
	show := func(s steps.Step) error {
		shown = append(shown, s.Current)
		return nil
	}
	var out bytes.Buffer

	in := strings.NewReader("p\nn\n\nnext\nP\nr\nzz\nq\nn\n")
	require.NoError(t, replay(in, &out, history(3), show, false))

	assert.Equal(t, []int{1, 2, 3, 2, 1}, shown)
	assert.Contains(t, out.String(), "Already at the first step.")
	assert.Contains(t, out.String(), "Already at the final step.")
	assert.Contains(t, out.String(), "Unknown command.")
	assert.NotContains(t, out.String(), replayPrompt)
}

func TestReplay_PromptAndEOF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, replay(strings.NewReader("n\n"), &out, history(2), func(steps.Step) error { return nil }, true))
	assert.Equal(t, 2, strings.Count(out.String(), replayPrompt))
}

func TestParseRange(t *testing.T) {
	lo, hi, err := parseRange("1:9")
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)

	for _, bad := range []string{"", "5", "a:2", "1:b", "9:1"} {
		_, _, err := parseRange(bad)
		assert.Error(t, err, bad)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nodes: 4
start: 2
edges:
  - {from: 1, to: 2, weight: 1}
  - {from: 2, to: 3, weight: 4}
`), 0o644))

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Graph is valid: 4 nodes, 2 edges, start 2")
	assert.Contains(t, out, "Unreachable from 2: [4]")

	_, err = execute(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunCommand_Preset(t *testing.T) {
	out, err := execute(t, "run", "--preset", "path:3", "--target", "3", "--start", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Path to 3: 1 → 2 → 3")
	assert.Contains(t, out, "current")
}
