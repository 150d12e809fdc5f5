package classify

import (
	"strings"
	"testing"

	"github.com/pdiddy/report-engine/internal/rules"
	"github.com/pdiddy/report-engine/pkg/types"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	return New(rules.Default(), types.ClassifyConfig{})
}

func TestScore(t *testing.T) {
	tests := []struct {
		name                            string
		keywords, patterns, totalInRule int
		want                            float64
	}{
		{"no matches", 0, 0, 5, 0.0},
		{"full keyword coverage", 5, 0, 5, 1.0},
		{"partial keywords", 1, 0, 5, 0.2},
		{"pattern bonus", 1, 1, 5, 0.4},
		{"pattern bonus capped at half", 0, 10, 5, 0.5},
		{"confidence capped at one", 5, 3, 5, 1.0},
		{"zero keywords in rule", 0, 1, 0, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.keywords, tt.patterns, tt.totalInRule)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Score(%d, %d, %d) = %v, want %v",
					tt.keywords, tt.patterns, tt.totalInRule, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("confidence %v outside [0,1]", got)
			}
		})
	}
}

func TestClassifyValveTexts(t *testing.T) {
	engine := defaultEngine(t)

	for _, text := range []string{
		"valve",
		"Rusted VALVE found near compressor 2",
		"replace the check valve today",
	} {
		result := engine.Classify(text)
		found := false
		for _, tag := range result.Tags {
			if tag == "Valve" {
				found = true
			}
		}
		if !found {
			t.Errorf("Classify(%q).Tags = %v, want Valve included", text, result.Tags)
		}
	}
}

func TestClassifyNoMatches(t *testing.T) {
	engine := defaultEngine(t)

	for _, text := range []string{"", "zzz qqq xyzzy"} {
		result := engine.Classify(text)
		if len(result.Tags) != 0 {
			t.Errorf("Classify(%q).Tags = %v, want empty", text, result.Tags)
		}
		if len(result.Suggestions) != 0 {
			t.Errorf("Classify(%q) returned %d suggestions, want 0", text, len(result.Suggestions))
		}
	}
}

func TestClassifyRankingAndLimit(t *testing.T) {
	engine := defaultEngine(t)

	// Broad text matching many rules.
	result := engine.Classify("critical leak and rust damage on hot valve near pump station outside")

	if len(result.Tags) > 5 {
		t.Fatalf("got %d tags, want at most 5", len(result.Tags))
	}
	if len(result.Suggestions) <= 5 {
		t.Fatalf("test text should trigger more than 5 suggestions, got %d", len(result.Suggestions))
	}

	for i := 1; i < len(result.Suggestions); i++ {
		prev, cur := result.Suggestions[i-1], result.Suggestions[i]
		if cur.Confidence > prev.Confidence {
			t.Fatalf("suggestions not sorted by confidence: %v before %v", prev, cur)
		}
		if cur.Confidence == prev.Confidence {
			if cur.Priority > prev.Priority {
				t.Fatalf("equal confidence not sorted by priority: %v before %v", prev, cur)
			}
			if cur.Priority == prev.Priority && cur.Tag < prev.Tag {
				t.Fatalf("equal confidence and priority not sorted by tag: %q before %q", prev.Tag, cur.Tag)
			}
		}
	}

	// Tags are the suggestion heads in order.
	for i, tag := range result.Tags {
		if tag != result.Suggestions[i].Tag {
			t.Errorf("tags[%d] = %q, want %q", i, tag, result.Suggestions[i].Tag)
		}
	}

	for _, s := range result.Suggestions {
		if s.Confidence <= 0.1 || s.Confidence > 1.0 {
			t.Errorf("suggestion %q confidence %v outside (0.1, 1.0]", s.Tag, s.Confidence)
		}
	}
}

func TestClassifyThreshold(t *testing.T) {
	// A rule with many keywords: one match scores 1/20 = 0.05, below the
	// 0.1 floor, so the suggestion is dropped even though it matched.
	keywords := strings.Fields("alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron pi rho sigma tau upsilon")
	lib, err := rules.New([]types.TagRule{
		{Tag: "Weak", Keywords: keywords, Priority: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	engine := New(lib, types.ClassifyConfig{})
	result := engine.Classify("alpha only")
	if len(result.Suggestions) != 0 {
		t.Errorf("below-threshold suggestion retained: %v", result.Suggestions)
	}

	// An OBSERVATION is still recorded for the match.
	observed := false
	for _, step := range result.Trace {
		if step.Kind == types.StepObservation && strings.Contains(step.Message, "Weak") {
			observed = true
		}
	}
	if !observed {
		t.Error("expected an OBSERVATION step for the matched rule")
	}
}

func TestClassifyTrace(t *testing.T) {
	engine := defaultEngine(t)

	result := engine.Classify("leaking valve")
	if len(result.Trace) == 0 {
		t.Fatal("expected a reasoning trace")
	}
	if result.Trace[0].Kind != types.StepThought {
		t.Errorf("first step = %s, want THOUGHT", result.Trace[0].Kind)
	}
	last := result.Trace[len(result.Trace)-1]
	if last.Kind != types.StepConclusion {
		t.Errorf("last step = %s, want CONCLUSION", last.Kind)
	}
	if !strings.Contains(last.Message, "Valve") {
		t.Errorf("conclusion %q does not name the selected tags", last.Message)
	}

	// A second call starts a fresh trace.
	again := engine.Classify("leaking valve")
	if len(again.Trace) != len(result.Trace) {
		t.Errorf("trace grew across calls: %d then %d steps", len(result.Trace), len(again.Trace))
	}
}

func TestExplain(t *testing.T) {
	engine := defaultEngine(t)

	got := engine.Explain("Valve", "rusted valve near compressor 2")
	if !strings.Contains(got, "valve") {
		t.Errorf("explanation missing matched keyword: %q", got)
	}
	if !strings.Contains(got, "Valve-related equipment") {
		t.Errorf("explanation missing rule description: %q", got)
	}

	got = engine.Explain("Valve", "pump is fine")
	if !strings.Contains(got, "would not be suggested") {
		t.Errorf("non-matching explanation = %q", got)
	}

	got = engine.Explain("Nonsense", "anything")
	if !strings.Contains(got, "not found") {
		t.Errorf("unknown tag explanation = %q", got)
	}
}
