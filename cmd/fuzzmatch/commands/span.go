package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/fuzzmatch/display"
	"github.com/teranos/fuzzmatch/match"
	"github.com/teranos/fuzzmatch/sym"
)

// SpanCmd represents the span command
var SpanCmd = &cobra.Command{
	Use:   "span A B",
	Short: sym.Span + " Locate the matching region between two strings",
	Long: sym.Span + ` span: locate the best-matching region between two strings

Finds the longest run of matching blocks and reports it from both
sides: where B's material sits inside A, and where A's sits inside B.
Offsets are rune positions, half-open.

Examples:
  fuzzmatch span "half an apple pie" apple
  fuzzmatch span kitten sitting
  fuzzmatch span "half an apple pie" apple --json`,
	Args: cobra.ExactArgs(2),
	RunE: runSpanCommand,
}

// spanReport is the machine-readable span output.
type spanReport struct {
	A   string     `json:"a"`
	B   string     `json:"b"`
	InA match.Span `json:"span_in_a"`
	InB match.Span `json:"span_in_b"`
}

func runSpanCommand(cmd *cobra.Command, args []string) error {
	a, b := args[0], args[1]
	report := spanReport{
		A:   a,
		B:   b,
		InA: match.SpanOf(a, b),
		InB: match.SpanOf(b, a),
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(report)
	}

	printSpan("A", report.InA)
	printSpan("B", report.InB)
	return nil
}

func printSpan(side string, s match.Span) {
	if s.Start < 0 {
		pterm.Warning.Printf("No common region in %s\n", side)
		return
	}
	fmt.Printf("%s %s[%d:%d) %q\n", sym.Span, side, s.Start, s.End, s.Text)
}
