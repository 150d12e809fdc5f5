// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules holds the declarative tag rule library and the matcher
// that evaluates rules against input text. Rules are plain data records
// so alternate tables can be loaded without touching matching logic.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/report-engine/pkg/types"
)

// Rule is a library rule with its patterns compiled for case-insensitive
// search.
type Rule struct {
	types.TagRule

	compiled []*regexp.Regexp
}

// Match holds the evidence a rule produced against one input: the keyword
// phrases found in the text and the number of distinct patterns that
// matched at least once.
type Match struct {
	Keywords []string
	Patterns int
}

// Matched reports whether the rule produced any evidence at all.
func (m Match) Matched() bool {
	return len(m.Keywords) > 0 || m.Patterns > 0
}

// Evaluate checks the rule's triggers against text. Keyword phrases match
// by substring containment, ignoring case, anywhere in the text. Each
// pattern counts at most once no matter how many occurrences it has.
func (r Rule) Evaluate(text string) Match {
	lower := strings.ToLower(text)

	var m Match
	for _, kw := range r.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			m.Keywords = append(m.Keywords, kw)
		}
	}
	for _, re := range r.compiled {
		if re.MatchString(text) {
			m.Patterns++
		}
	}
	return m
}

// Library is an immutable registry of tag rules. Rules keep their
// registration order; tag names are unique keys.
type Library struct {
	rules []Rule
	byTag map[string]int
}

// New builds a Library from a rule table. It rejects empty tables, blank
// or duplicate tag names, and patterns that fail to compile. Patterns are
// compiled with case-insensitive matching.
func New(table []types.TagRule) (*Library, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("rule table is empty")
	}

	lib := &Library{
		rules: make([]Rule, 0, len(table)),
		byTag: make(map[string]int, len(table)),
	}

	for _, tr := range table {
		if strings.TrimSpace(tr.Tag) == "" {
			return nil, fmt.Errorf("rule with empty tag name")
		}
		if _, exists := lib.byTag[tr.Tag]; exists {
			return nil, fmt.Errorf("duplicate tag %q in rule table", tr.Tag)
		}

		r := Rule{TagRule: tr}
		for _, p := range tr.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("tag %q: compiling pattern %q: %w", tr.Tag, p, err)
			}
			r.compiled = append(r.compiled, re)
		}

		lib.byTag[tr.Tag] = len(lib.rules)
		lib.rules = append(lib.rules, r)
	}

	return lib, nil
}

// Rules returns the library's rules in registration order.
func (l *Library) Rules() []Rule {
	out := make([]Rule, len(l.rules))
	copy(out, l.rules)
	return out
}

// Rule looks up a rule by tag name.
func (l *Library) Rule(tag string) (Rule, bool) {
	i, ok := l.byTag[tag]
	if !ok {
		return Rule{}, false
	}
	return l.rules[i], true
}

// Len returns the number of rules in the library.
func (l *Library) Len() int {
	return len(l.rules)
}
