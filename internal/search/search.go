// Package search implements search-and-replace over a block-structured document.
//
// Replacement runs in two phases. FindAll scans every block's original text
// and records non-overlapping matches without touching the document. The
// apply phase then rebuilds each affected block in a single pass from its
// original text and match list, so offsets never drift.
package search

import (
	"fmt"
	"time"
	"unicode/utf16"

	"github.com/dlclark/regexp2"

	"linuxword/internal/document"
)

// DefaultTimeout bounds a single regular expression match.
const DefaultTimeout = 2 * time.Second

// InvalidPatternError is returned for an empty or malformed search pattern.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid search pattern %q", e.Pattern)
	}
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Match is one occurrence of a pattern inside a block, in UTF-16 code units.
type Match struct {
	BlockKey string
	Start    int
	End      int
}

// Result is the outcome of ReplaceAll.
type Result struct {
	Document document.Document
	Matches  []Match
}

// Count returns the number of replacements made.
func (r Result) Count() int {
	return len(r.Matches)
}

// Pattern is a compiled search pattern using ECMAScript regular expression syntax.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// Compile compiles pattern with DefaultTimeout.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithTimeout(pattern, DefaultTimeout)
}

// CompileWithTimeout compiles pattern; each match attempt is bounded by timeout.
func CompileWithTimeout(pattern string, timeout time.Duration) (*Pattern, error) {
	if pattern == "" {
		return nil, &InvalidPatternError{Pattern: pattern}
	}
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &Pattern{source: pattern, re: re}, nil
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// FindInText returns the non-overlapping matches in text, left to right.
// A zero-length match advances the scan by one position.
func (p *Pattern) FindInText(text string) ([]document.Span, error) {
	runes := []rune(text)

	// units[i] is the UTF-16 offset of runes[i]; units[len(runes)] is the length.
	units := make([]int, len(runes)+1)
	for i, r := range runes {
		units[i+1] = units[i] + utf16.RuneLen(r)
	}

	var spans []document.Span
	pos := 0
	for pos <= len(runes) {
		m, err := p.re.FindRunesMatchStartingAt(runes, pos)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", p.source, err)
		}
		if m == nil {
			break
		}
		start, end := m.Index, m.Index+m.Length
		spans = append(spans, document.Span{Start: units[start], End: units[end]})
		if end > start {
			pos = end
		} else {
			pos = end + 1
		}
	}
	return spans, nil
}

// FindAll scans every block of doc and returns the matches in document order.
func (p *Pattern) FindAll(doc document.Document) ([]Match, error) {
	var matches []Match
	for _, b := range doc.Blocks() {
		spans, err := p.FindInText(b.Text)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", b.Key, err)
		}
		for _, sp := range spans {
			matches = append(matches, Match{BlockKey: b.Key, Start: sp.Start, End: sp.End})
		}
	}
	return matches, nil
}

// ReplaceAll replaces every match in doc with the literal replacement text.
// With no matches the original document is returned.
func (p *Pattern) ReplaceAll(doc document.Document, replacement string) (Result, error) {
	matches, err := p.FindAll(doc)
	if err != nil {
		return Result{}, err
	}
	if len(matches) == 0 {
		return Result{Document: doc}, nil
	}

	next, err := apply(doc, matches, replacement)
	if err != nil {
		return Result{}, err
	}
	return Result{Document: next, Matches: matches}, nil
}

// apply groups matches by block and rebuilds each affected block once.
func apply(doc document.Document, matches []Match, replacement string) (document.Document, error) {
	byBlock := make(map[string][]document.Span)
	var order []string
	for _, m := range matches {
		if _, ok := byBlock[m.BlockKey]; !ok {
			order = append(order, m.BlockKey)
		}
		byBlock[m.BlockKey] = append(byBlock[m.BlockKey], document.Span{Start: m.Start, End: m.End})
	}

	updated := make([]document.Block, 0, len(order))
	for _, key := range order {
		b, ok := doc.Block(key)
		if !ok {
			return document.Document{}, fmt.Errorf("%w: %s", document.ErrUnknownBlock, key)
		}
		nb, err := b.Splice(byBlock[key], replacement)
		if err != nil {
			return document.Document{}, fmt.Errorf("rebuild block %s: %w", key, err)
		}
		updated = append(updated, nb)
	}
	return doc.WithBlocks(updated...)
}

// FindAll compiles pattern and returns its matches in doc.
func FindAll(doc document.Document, pattern string) ([]Match, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.FindAll(doc)
}

// ReplaceAll compiles pattern and replaces every match in doc.
func ReplaceAll(doc document.Document, pattern, replacement string) (Result, error) {
	p, err := Compile(pattern)
	if err != nil {
		return Result{}, err
	}
	return p.ReplaceAll(doc, replacement)
}
