// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"strings"
)

// Explain returns a human-readable justification for why tag would or
// would not be suggested for text. An unknown tag yields a "not found"
// message rather than an error, since Explain is an introspection aid.
func (e *Engine) Explain(tag, text string) string {
	rule, ok := e.lib.Rule(tag)
	if !ok {
		return fmt.Sprintf("Tag %q not found in library", tag)
	}

	m := rule.Evaluate(text)
	confidence := Score(len(m.Keywords), m.Patterns, len(rule.Keywords))

	var b strings.Builder
	if !m.Matched() {
		fmt.Fprintf(&b, "Tag %q would not be suggested:\n", tag)
		fmt.Fprintf(&b, "- Description: %s\n", rule.Description)
		fmt.Fprintf(&b, "- No keywords or patterns matched the text\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Tag %q was suggested because:\n", tag)
	fmt.Fprintf(&b, "- Description: %s\n", rule.Description)
	if len(m.Keywords) > 0 {
		fmt.Fprintf(&b, "- Matched keywords: %s\n", strings.Join(m.Keywords, ", "))
	}
	if m.Patterns > 0 {
		fmt.Fprintf(&b, "- Matched patterns: %d pattern(s)\n", m.Patterns)
	}
	fmt.Fprintf(&b, "- Confidence: %.2f\n", confidence)
	return b.String()
}
