// Package display renders command output for humans and agents.
//
// Output format follows a precedence chain: explicit --json flags win, then
// agent-environment detection defaults to machine-readable JSON. Humans at a
// terminal get pretty output.
package display

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsAgentEnvironment returns true when the caller is a detected coding
// agent rather than a human shell.
func IsAgentEnvironment() bool {
	// Explicit caller declaration wins
	if os.Getenv("FUZZMATCH_CALLER") == "llm" {
		return true
	}

	return detectKnownAgentTools()
}

// detectKnownAgentTools checks for environment variables set by known
// agent harnesses
func detectKnownAgentTools() bool {
	// Claude Code
	if os.Getenv("CLAUDECODE") != "" || os.Getenv("CLAUDE_CODE_ENTRYPOINT") != "" {
		return true
	}

	// Cursor
	if os.Getenv("CURSOR") != "" {
		return true
	}

	// GitHub Copilot (if it sets identifying vars)
	if os.Getenv("GITHUB_COPILOT") != "" {
		return true
	}

	return false
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}
