// Package normalize provides preprocessing presets for matcher construction.
//
// The matcher accepts an opaque func(string) string hook and applies it to
// corpus entries and queries alike; this package supplies the common
// transforms so callers don't rewrite them. Presets compose with Chain and
// resolve from flag/config strings with Named.
package normalize

import (
	"strings"

	"github.com/kljensen/snowball"

	"github.com/teranos/fuzzmatch/errors"
)

// Func transforms a string before indexing or querying. Both corpus entries
// and queries pass through the same Func, so any transform keeps the two
// sides comparable.
type Func func(string) string

// Lower maps the string to lower case.
func Lower(s string) string {
	return strings.ToLower(s)
}

// TrimSpace removes leading and trailing whitespace.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// Collapse rewrites every whitespace run as a single space and trims the
// ends. "  two   words " becomes "two words".
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Stem returns a Func that snowball-stems each whitespace-separated word.
// Stemmed words come back lower case. Words the stemmer rejects, including
// every word under an unsupported language, pass through unchanged.
func Stem(language string) Func {
	return func(s string) string {
		words := strings.Fields(s)
		if len(words) == 0 {
			return s
		}
		for i, w := range words {
			stemmed, err := snowball.Stem(w, language, true)
			if err != nil {
				continue
			}
			words[i] = stemmed
		}
		return strings.Join(words, " ")
	}
}

// Chain composes transforms left to right: Chain(a, b)(s) is b(a(s)).
func Chain(fns ...Func) Func {
	return func(s string) string {
		for _, fn := range fns {
			s = fn(s)
		}
		return s
	}
}

// StemLanguages lists the languages the snowball stemmer accepts, in the
// spelling Named expects after "stem:".
var StemLanguages = []string{
	"english", "spanish", "french", "russian", "swedish", "norwegian", "hungarian",
}

func stemLanguageSupported(language string) bool {
	for _, l := range StemLanguages {
		if l == language {
			return true
		}
	}
	return false
}

// Named resolves a comma-separated preset list into a single Func, for flag
// and config values like "lower,stem" or "trim,stem:spanish".
//
// Recognized presets: "lower", "trim", "collapse", "stem" (english), and
// "stem:<language>". Names are case-insensitive and surrounding whitespace
// is ignored. An empty spec yields a nil Func, meaning no preprocessing.
func Named(spec string) (Func, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var fns []Func
	for _, part := range strings.Split(spec, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		switch {
		case name == "lower":
			fns = append(fns, Lower)
		case name == "trim":
			fns = append(fns, TrimSpace)
		case name == "collapse":
			fns = append(fns, Collapse)
		case name == "stem":
			fns = append(fns, Stem("english"))
		case strings.HasPrefix(name, "stem:"):
			language := strings.TrimPrefix(name, "stem:")
			if !stemLanguageSupported(language) {
				return nil, errors.NewValidationError(
					"unsupported stem language %q (supported: %s)",
					language, strings.Join(StemLanguages, ", "))
			}
			fns = append(fns, Stem(language))
		case name == "":
			return nil, errors.NewValidationError("empty normalizer name in %q", spec)
		default:
			return nil, errors.NewValidationError(
				"unknown normalizer %q (recognized: lower, trim, collapse, stem, stem:<language>)", name)
		}
	}
	return Chain(fns...), nil
}
