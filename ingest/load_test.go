package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fuzzmatch/errors"
)

func writeCorpusFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTextLines(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.txt",
		"alpha\n\n# a comment\nbeta gamma\n   \n  # indented comment\ndelta\n")

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta gamma", "delta"}, texts)
}

func TestLoadTextKeepsLinesVerbatim(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.txt", "  padded entry  \n")

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"  padded entry  "}, texts)
}

func TestLoadTextHandlesCRLF(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.txt", "one\r\ntwo\r\n")

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, texts)
}

func TestLoadUnknownExtensionReadsAsText(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.dat", "a\nb\n")

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, texts)
}

func TestLoadJSONArray(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.json", `["apple", "banana"]`)

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana"}, texts)
}

func TestLoadJSONManifest(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.json", `{"texts": ["x", "y"]}`)

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, texts)
}

func TestLoadJSONWithoutTextsFailsValidation(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.json", `{"other": 1}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLoadJSONMalformed(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.json", `{not json`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadYAMLList(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.yaml", "- apple\n- banana\n")

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana"}, texts)
}

func TestLoadYAMLManifest(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.yml", "texts:\n  - x\n  - y\n")

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, texts)
}

func TestLoadYAMLWithoutTextsFailsValidation(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.yaml", "other: 1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLoadTOMLManifest(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.toml", `texts = ["a", "b"]`)

	texts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, texts)
}

func TestLoadTOMLWithoutTextsFailsValidation(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.toml", `other = 1`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestLoadReader(t *testing.T) {
	texts, err := LoadReader(strings.NewReader("one\n# skip\n\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, texts)
}

func TestLoadDashReadsStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	_, err = w.WriteString("from stdin\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	texts, err := Load("-")
	require.NoError(t, err)
	assert.Equal(t, []string{"from stdin"}, texts)
}

func TestLoadAllPreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeCorpusFile(t, dir, "first.txt", "one\n")
	second := writeCorpusFile(t, dir, "second.json", `["two"]`)
	third := writeCorpusFile(t, dir, "third.yaml", "- three\n")

	texts, err := LoadAll(context.Background(), first, second, third)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, texts)
}

func TestLoadAllPropagatesError(t *testing.T) {
	dir := t.TempDir()
	good := writeCorpusFile(t, dir, "good.txt", "one\n")

	_, err := LoadAll(context.Background(), good, filepath.Join(dir, "absent.txt"))
	require.Error(t, err)
}

func TestLoadAllNoPaths(t *testing.T) {
	texts, err := LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, texts)
}

func TestLoadAllCancelledContext(t *testing.T) {
	path := writeCorpusFile(t, t.TempDir(), "corpus.txt", "one\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadAll(ctx, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
