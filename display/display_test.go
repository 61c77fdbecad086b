package display

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearAgentEnv blanks every environment variable the agent detection
// consults, so ambient shell state cannot leak into assertions.
func clearAgentEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FUZZMATCH_CALLER",
		"CLAUDECODE",
		"CLAUDE_CODE_ENTRYPOINT",
		"CURSOR",
		"GITHUB_COPILOT",
	} {
		t.Setenv(key, "")
	}
}

func TestIsAgentEnvironmentExplicitCaller(t *testing.T) {
	clearAgentEnv(t)
	assert.False(t, IsAgentEnvironment())

	t.Setenv("FUZZMATCH_CALLER", "llm")
	assert.True(t, IsAgentEnvironment())

	t.Setenv("FUZZMATCH_CALLER", "human")
	assert.False(t, IsAgentEnvironment())
}

func TestIsAgentEnvironmentKnownTools(t *testing.T) {
	for _, key := range []string{"CLAUDECODE", "CLAUDE_CODE_ENTRYPOINT", "CURSOR", "GITHUB_COPILOT"} {
		t.Run(key, func(t *testing.T) {
			clearAgentEnv(t)
			t.Setenv(key, "1")
			assert.True(t, IsAgentEnvironment())
		})
	}
}

type payload struct {
	A int `json:"a"`
}

func TestMarshalJSONUsesPrettyInTests(t *testing.T) {
	data, err := MarshalJSON(payload{A: 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestMarshalAgentPrefixesCompactJSON(t *testing.T) {
	data, err := marshalAgent(payload{A: 1})
	require.NoError(t, err)
	assert.Equal(t, `json:{"a":1}`, string(data))
}

func TestMarshalPretty(t *testing.T) {
	data, err := marshalPretty(payload{A: 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

// newTestCommands builds a fresh root/child pair carrying the CLI's json
// flag layout.
func newTestCommands() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "fuzzmatch"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "match", Run: func(*cobra.Command, []string) {}}
	child.Flags().Bool("json", false, "")
	root.AddCommand(child)
	return root, child
}

func TestShouldOutputJSON(t *testing.T) {
	t.Run("local flag true wins", func(t *testing.T) {
		clearAgentEnv(t)
		_, child := newTestCommands()
		require.NoError(t, child.Flags().Set("json", "true"))
		assert.True(t, ShouldOutputJSON(child))
	})

	t.Run("explicit local false beats global and agent env", func(t *testing.T) {
		clearAgentEnv(t)
		t.Setenv("FUZZMATCH_CALLER", "llm")
		root, child := newTestCommands()
		require.NoError(t, root.PersistentFlags().Set("json", "true"))
		require.NoError(t, child.Flags().Set("json", "false"))
		assert.False(t, ShouldOutputJSON(child))
	})

	t.Run("global flag applies when local unset", func(t *testing.T) {
		clearAgentEnv(t)
		root, child := newTestCommands()
		require.NoError(t, root.PersistentFlags().Set("json", "true"))
		assert.True(t, ShouldOutputJSON(child))
	})

	t.Run("clean environment defaults to human output", func(t *testing.T) {
		clearAgentEnv(t)
		_, child := newTestCommands()
		assert.False(t, ShouldOutputJSON(child))
	})

	t.Run("agent environment defaults to JSON", func(t *testing.T) {
		clearAgentEnv(t)
		t.Setenv("FUZZMATCH_CALLER", "llm")
		_, child := newTestCommands()
		assert.True(t, ShouldOutputJSON(child))
	})

	t.Run("nil command falls back to agent detection", func(t *testing.T) {
		clearAgentEnv(t)
		assert.False(t, ShouldOutputJSON(nil))
		t.Setenv("FUZZMATCH_CALLER", "llm")
		assert.True(t, ShouldOutputJSON(nil))
	})
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTTY(f))
}

func TestOutputJSON(t *testing.T) {
	assert.NoError(t, OutputJSON(payload{A: 2}))
	assert.Error(t, OutputJSON(make(chan int)))
}
