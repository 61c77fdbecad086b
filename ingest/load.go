// Package ingest acquires corpus candidates from files and streams.
//
// Load dispatches on file extension: JSON, YAML, and TOML documents carry an
// explicit texts array, everything else reads as plain text with one
// candidate per line. Watcher re-reads a file set on change for watch mode.
package ingest

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/logger"
)

// maxLineBytes bounds a single plain-text candidate line.
const maxLineBytes = 1024 * 1024

// Load reads corpus candidates from a single file. The path "-" reads from
// stdin as plain text. Format follows the extension: .json, .yaml/.yml, and
// .toml parse as documents, anything else as one candidate per line.
func Load(path string) ([]string, error) {
	if path == "-" {
		return LoadReader(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading corpus file %s", path)
	}

	format := formatFor(path)
	var texts []string
	switch format {
	case "json":
		texts, err = parseJSON(path, data)
	case "yaml":
		texts, err = parseYAML(path, data)
	case "toml":
		texts, err = parseTOML(path, data)
	default:
		texts, err = parseLines(data)
	}
	if err != nil {
		return nil, err
	}

	logger.CorpusDebugw("Corpus file loaded",
		"path", path,
		"format", format,
		"count", len(texts))
	return texts, nil
}

// LoadReader reads plain-text candidates from r, one per line. Blank lines
// and lines whose first non-space rune is '#' are skipped; other lines are
// kept verbatim.
func LoadReader(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading corpus stream")
	}
	return parseLines(data)
}

// LoadAll loads several corpus files concurrently and concatenates their
// candidates in argument order.
func LoadAll(ctx context.Context, paths ...string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	results := make([][]string, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			texts, err := Load(path)
			if err != nil {
				return err
			}
			results[i] = texts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, texts := range results {
		all = append(all, texts...)
	}
	return all, nil
}

// formatFor maps a path to its parse format.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "text"
	}
}

func parseLines(data []byte) ([]string, error) {
	var texts []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning corpus lines")
	}
	return texts, nil
}

func parseJSON(path string, data []byte) ([]string, error) {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil && list != nil {
		return list, nil
	}

	var doc struct {
		Texts []string `json:"texts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if doc.Texts == nil {
		return nil, errors.NewValidationError("%s has no texts array", path)
	}
	return doc.Texts, nil
}

func parseYAML(path string, data []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil && list != nil {
		return list, nil
	}

	var doc struct {
		Texts []string `yaml:"texts"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if doc.Texts == nil {
		return nil, errors.NewValidationError("%s has no texts list", path)
	}
	return doc.Texts, nil
}

func parseTOML(path string, data []byte) ([]string, error) {
	var doc struct {
		Texts []string `toml:"texts"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if doc.Texts == nil {
		return nil, errors.NewValidationError("%s has no texts array", path)
	}
	return doc.Texts, nil
}
