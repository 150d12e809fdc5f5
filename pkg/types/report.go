// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records exchanged between the rule
// engine, the transcriber, the history store, and the CLI.
package types

// StepKind identifies one kind of reasoning step.
type StepKind string

const (
	StepThought     StepKind = "THOUGHT"
	StepAction      StepKind = "ACTION"
	StepObservation StepKind = "OBSERVATION"
	StepConclusion  StepKind = "CONCLUSION"
)

// Step is a single entry in a reasoning trace: what the engine considered,
// did, saw, or decided while producing a result.
type Step struct {
	Kind    StepKind `json:"kind" yaml:"kind"`
	Message string   `json:"message" yaml:"message"`
}

// TagRule binds a tag name to the keyword and pattern triggers that justify
// suggesting it. Keywords are lowercase phrases matched by substring
// containment; Patterns are regular expressions applied case-insensitively.
// Priority is a tie-break weight after confidence (severity rules carry the
// highest weight, condition rules the next, equipment and location the lowest).
type TagRule struct {
	Tag         string   `json:"tag" yaml:"tag"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Patterns    []string `json:"patterns" yaml:"patterns"`
	Priority    int      `json:"priority" yaml:"priority"`
	Description string   `json:"description" yaml:"description"`
}

// Suggestion is one tag proposed for an input, with the evidence that
// produced it. Confidence is always in [0,1].
type Suggestion struct {
	Tag             string   `json:"tag" yaml:"tag"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
	Priority        int      `json:"priority" yaml:"priority"`
	MatchedKeywords []string `json:"matched_keywords" yaml:"matched_keywords"`
	PatternMatches  int      `json:"pattern_matches" yaml:"pattern_matches"`
	Description     string   `json:"description" yaml:"description"`
}

// Classification is the full result of classifying one input: the selected
// tag names, every retained suggestion in rank order, the word list pulled
// from the input, and the reasoning trace.
type Classification struct {
	Tags        []string     `json:"tags" yaml:"tags"`
	Suggestions []Suggestion `json:"suggestions" yaml:"suggestions"`
	Keywords    []string     `json:"keywords" yaml:"keywords"`
	Trace       []Step       `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// ReadingPair is one validated meter reading. The field names and the
// integer typing of Reading are the wire contract for serialized output
// and must not change.
type ReadingPair struct {
	Unit    string `json:"unit" yaml:"unit"`
	Reading int    `json:"reading" yaml:"reading"`
}

// Transcript is the validated result of one reading transcription.
type Transcript struct {
	Pairs []ReadingPair `json:"pairs" yaml:"pairs"`
	Trace []Step        `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// TranscriptSummary aggregates a validated transcript.
type TranscriptSummary struct {
	TotalUnits     int      `json:"total_units" yaml:"total_units"`
	TotalReading   int      `json:"total_reading" yaml:"total_reading"`
	AverageReading float64  `json:"average_reading" yaml:"average_reading"`
	Units          []string `json:"units" yaml:"units"`
}
