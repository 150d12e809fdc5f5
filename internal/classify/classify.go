// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify ranks maintenance report text against the tag rule
// library and produces confidence-scored suggestions with a reasoning
// trace. Classification never fails: text matching nothing yields an
// empty result.
package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/report-engine/internal/rules"
	"github.com/pdiddy/report-engine/internal/trace"
	"github.com/pdiddy/report-engine/pkg/types"
)

const (
	defaultMaxTags       = 5
	defaultMinConfidence = 0.1

	// patternBonusStep and patternBonusCap bound the pattern contribution
	// so pattern-only rules cannot reach full confidence from match volume
	// alone.
	patternBonusStep = 0.2
	patternBonusCap  = 0.5
)

var wordPattern = regexp.MustCompile(`\w+`)

// Engine classifies one input at a time against an immutable rule library.
// An Engine owns its trace for the duration of a call; concurrent callers
// need one Engine each.
type Engine struct {
	lib           *rules.Library
	trace         trace.Trace
	maxTags       int
	minConfidence float64
}

// New builds an Engine over lib. Zero config fields fall back to the
// defaults (5 tags, 0.1 minimum confidence).
func New(lib *rules.Library, cfg types.ClassifyConfig) *Engine {
	maxTags := cfg.MaxTags
	if maxTags <= 0 {
		maxTags = defaultMaxTags
	}
	minConfidence := cfg.MinConfidence
	if minConfidence <= 0 {
		minConfidence = defaultMinConfidence
	}
	return &Engine{lib: lib, maxTags: maxTags, minConfidence: minConfidence}
}

// Score converts match counts into a confidence value in [0,1]. Keyword
// coverage carries the base score; each distinct matched pattern adds a
// bonus, capped at patternBonusCap.
func Score(keywordMatches, patternMatches, totalKeywords int) float64 {
	keywordScore := 0.0
	if totalKeywords > 0 {
		keywordScore = float64(keywordMatches) / float64(totalKeywords)
	}

	patternBonus := float64(patternMatches) * patternBonusStep
	if patternBonus > patternBonusCap {
		patternBonus = patternBonusCap
	}

	confidence := keywordScore + patternBonus
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// Classify evaluates every rule against text and returns the ranked tag
// list, the retained suggestions, the extracted word list, and the
// reasoning trace.
func (e *Engine) Classify(text string) types.Classification {
	e.trace.Reset()
	e.trace.Thought("Analyzing description: %q", text)

	words := extractWords(text)
	e.trace.Action("Extracted keywords: %v", words)

	var suggestions []types.Suggestion
	for _, rule := range e.lib.Rules() {
		m := rule.Evaluate(text)
		if !m.Matched() {
			continue
		}

		confidence := Score(len(m.Keywords), m.Patterns, len(rule.Keywords))
		e.trace.Observation("Tag %q: %d keyword matches, %d pattern matches, confidence: %.2f",
			rule.Tag, len(m.Keywords), m.Patterns, confidence)

		if confidence <= e.minConfidence {
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			Tag:             rule.Tag,
			Confidence:      confidence,
			Priority:        rule.Priority,
			MatchedKeywords: m.Keywords,
			PatternMatches:  m.Patterns,
			Description:     rule.Description,
		})
	}

	sortSuggestions(suggestions)

	tags := make([]string, 0, e.maxTags)
	for _, s := range suggestions {
		if len(tags) == e.maxTags {
			break
		}
		tags = append(tags, s.Tag)
	}

	e.trace.Conclusion("Final suggested tags: %v", tags)

	return types.Classification{
		Tags:        tags,
		Suggestions: suggestions,
		Keywords:    words,
		Trace:       e.trace.Steps(),
	}
}

// sortSuggestions orders by confidence descending, then priority
// descending, then tag name ascending so equal scores rank the same way
// on every run.
func sortSuggestions(suggestions []types.Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		if suggestions[i].Priority != suggestions[j].Priority {
			return suggestions[i].Priority > suggestions[j].Priority
		}
		return suggestions[i].Tag < suggestions[j].Tag
	})
}

// extractWords lowercases text and pulls out its word tokens.
func extractWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
