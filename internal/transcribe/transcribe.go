// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcribe extracts (unit, reading) pairs from freeform meter
// reading text and validates them. Repeated identical reports are treated
// as harmless noise and collapsed; divergent readings for one unit are a
// data-quality error that aborts the whole call, never silently resolved.
package transcribe

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/report-engine/internal/trace"
	"github.com/pdiddy/report-engine/pkg/types"
)

// readingPattern matches one reported reading: an optional "Unit" literal,
// an identifier of digits plus one letter, a reporting verb, a numeric
// literal, and the "cubic meter" phrase. Applied case-insensitively over
// the whole input.
var readingPattern = regexp.MustCompile(
	`(?i)(?:Unit\s+)?(\d+[A-Z])\s+(?:reads|is|reading)\s+(\d+(?:\.\d+)?)\s+cubic\s+meter`)

// RawPair is one extracted (identifier, reading literal) pair before
// validation. The literal keeps its original text so conflict reports
// show exactly what was said.
type RawPair struct {
	Unit    string
	Literal string
}

// NoMatchError reports that no reading could be extracted from the input.
type NoMatchError struct {
	Input string
}

func (e *NoMatchError) Error() string {
	return "no unit readings found in input"
}

// ConflictError reports units that were given more than one distinct
// reading value. Conflicts maps each unit to every distinct literal seen,
// in first-seen order.
type ConflictError struct {
	Conflicts map[string][]string
}

func (e *ConflictError) Error() string {
	units := make([]string, 0, len(e.Conflicts))
	for unit := range e.Conflicts {
		units = append(units, unit)
	}
	sort.Strings(units)

	details := make([]string, 0, len(units))
	for _, unit := range units {
		details = append(details, fmt.Sprintf("Unit %s: %s cubic meters",
			unit, strings.Join(e.Conflicts[unit], ", ")))
	}
	return fmt.Sprintf("conflicting readings found for the same unit(s): %s; please provide consistent readings for each unit",
		strings.Join(details, "; "))
}

// Extract returns every non-overlapping reading match in text, left to
// right, duplicates included. Deduplication is the validator's job.
func Extract(text string) []RawPair {
	matches := readingPattern.FindAllStringSubmatch(text, -1)
	pairs := make([]RawPair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, RawPair{Unit: m[1], Literal: m[2]})
	}
	return pairs
}

// Transcriber runs extraction and validation over one input at a time,
// recording a reasoning trace. One instance per concurrent caller.
type Transcriber struct {
	trace trace.Trace
}

// New returns a ready Transcriber.
func New() *Transcriber {
	return &Transcriber{}
}

// Transcribe extracts reading pairs from text, validates them, and
// returns the validated transcript. It fails with *NoMatchError when no
// pair can be extracted and with *ConflictError when any unit has
// divergent readings; no partial result is returned in either case.
func (t *Transcriber) Transcribe(text string) (types.Transcript, error) {
	t.trace.Reset()
	t.trace.Thought("What information is provided in: %q", text)

	t.trace.Action("Extract unit and reading pairs using regex pattern")
	raw := Extract(text)
	t.trace.Observation("Found %d unit-reading pairs: %v", len(raw), formatPairs(raw))

	t.trace.Thought("I need to validate extracted matches to ensure data consistency")
	unique, err := t.validate(raw, text)
	if err != nil {
		return types.Transcript{Trace: t.trace.Steps()}, err
	}

	t.trace.Thought("I need to convert each pair into the structured reading format")
	pairs := make([]types.ReadingPair, 0, len(unique))
	for _, p := range unique {
		reading, err := parseReading(p.Literal)
		if err != nil {
			// The regex only admits numeric literals, so this cannot happen
			// for extracted input.
			return types.Transcript{Trace: t.trace.Steps()}, err
		}
		t.trace.Action("Processing unit %s with reading %s", p.Unit, p.Literal)
		pairs = append(pairs, types.ReadingPair{Unit: p.Unit, Reading: reading})
	}

	t.trace.Conclusion("Transcribed %d unit reading(s)", len(pairs))
	return types.Transcript{Pairs: pairs, Trace: t.trace.Steps()}, nil
}

// validate applies the validation policy: fail fast on an empty set, drop
// exact duplicates keeping the first occurrence, and fail on units with
// distinct reading values.
func (t *Transcriber) validate(raw []RawPair, input string) ([]RawPair, error) {
	if len(raw) == 0 {
		t.trace.Observation("Found error/s in regex matching")
		return nil, &NoMatchError{Input: input}
	}
	t.trace.Observation("Found no error/s in regex matching")

	t.trace.Action("Checking for exact duplicate entries")
	unique := dedupe(raw)
	if len(unique) < len(raw) {
		t.trace.Observation("Found exact duplicate unit entries")
		t.trace.Action("Removed duplicates, now have %d unique entries", len(unique))
	} else {
		t.trace.Observation("No exact duplicate entries found")
	}

	t.trace.Action("Checking for units with conflicting reading values")
	conflicts := findConflicts(unique)
	if len(conflicts) > 0 {
		t.trace.Observation("Found units with conflicting reading values")
		units := make([]string, 0, len(conflicts))
		for unit := range conflicts {
			units = append(units, unit)
		}
		sort.Strings(units)
		for _, unit := range units {
			t.trace.Thought("The conflicting values are Unit %s: %s cubic meters",
				unit, strings.Join(conflicts[unit], ", "))
		}
		return nil, &ConflictError{Conflicts: conflicts}
	}
	t.trace.Observation("No conflicting values found")

	return unique, nil
}

// dedupe drops exact (unit, literal) duplicates, keeping the first
// occurrence and preserving order.
func dedupe(raw []RawPair) []RawPair {
	seen := make(map[RawPair]bool, len(raw))
	out := make([]RawPair, 0, len(raw))
	for _, p := range raw {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// findConflicts groups pairs by unit and reports every unit that carries
// more than one distinct reading literal.
func findConflicts(pairs []RawPair) map[string][]string {
	byUnit := make(map[string][]string)
	for _, p := range pairs {
		if !contains(byUnit[p.Unit], p.Literal) {
			byUnit[p.Unit] = append(byUnit[p.Unit], p.Literal)
		}
	}

	conflicts := make(map[string][]string)
	for unit, values := range byUnit {
		if len(values) > 1 {
			conflicts[unit] = values
		}
	}
	return conflicts
}

// parseReading converts a reading literal to an integer by parsing it as
// a float and truncating toward zero, so "30.0" and "30.9" both yield 30.
func parseReading(literal string) (int, error) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing reading %q: %w", literal, err)
	}
	return int(f), nil
}

func contains(values []string, v string) bool {
	for _, have := range values {
		if have == v {
			return true
		}
	}
	return false
}

func formatPairs(pairs []RawPair) []string {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, fmt.Sprintf("(%s, %s)", p.Unit, p.Literal))
	}
	return out
}
