package transcribe

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/report-engine/pkg/types"
)

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.ReadingPair
	}{
		{
			name:  "two units with mixed verbs",
			input: "Unit 19A reads 30 cubic meter, 19B is 5 cubic meter",
			want: []types.ReadingPair{
				{Unit: "19A", Reading: 30},
				{Unit: "19B", Reading: 5},
			},
		},
		{
			name:  "optional Unit literal",
			input: "10A reads 25 cubic meter, Unit 10B is 15 cubic meter",
			want: []types.ReadingPair{
				{Unit: "10A", Reading: 25},
				{Unit: "10B", Reading: 15},
			},
		},
		{
			name:  "exact duplicate collapsed",
			input: "Unit 10A reads 25 cubic meter, Unit 10A reads 25 cubic meter",
			want: []types.ReadingPair{
				{Unit: "10A", Reading: 25},
			},
		},
		{
			name:  "decimal literal truncated",
			input: "Unit 7C reads 30.9 cubic meter",
			want: []types.ReadingPair{
				{Unit: "7C", Reading: 30},
			},
		},
		{
			name:  "whole decimal coerced to integer",
			input: "Unit 7C reads 30.0 cubic meter",
			want: []types.ReadingPair{
				{Unit: "7C", Reading: 30},
			},
		},
		{
			name:  "reading verb",
			input: "Unit 3D reading 12 cubic meters",
			want: []types.ReadingPair{
				{Unit: "3D", Reading: 12},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			result, err := tr.Transcribe(tt.input)
			if err != nil {
				t.Fatalf("Transcribe returned error: %v", err)
			}
			if !reflect.DeepEqual(result.Pairs, tt.want) {
				t.Errorf("pairs = %v, want %v", result.Pairs, tt.want)
			}
			if len(result.Trace) == 0 {
				t.Error("expected a reasoning trace")
			}
		})
	}
}

func TestTranscribeNoMatch(t *testing.T) {
	tr := New()
	_, err := tr.Transcribe("no readings here")

	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("error = %v, want *NoMatchError", err)
	}
	if noMatch.Input != "no readings here" {
		t.Errorf("Input = %q", noMatch.Input)
	}
}

func TestTranscribeConflict(t *testing.T) {
	tr := New()
	_, err := tr.Transcribe("Unit 10A reads 25 cubic meter, Unit 10A reads 40 cubic meter")

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want *ConflictError", err)
	}

	values, ok := conflict.Conflicts["10A"]
	if !ok {
		t.Fatalf("conflict does not name unit 10A: %v", conflict.Conflicts)
	}
	if !reflect.DeepEqual(values, []string{"25", "40"}) {
		t.Errorf("conflicting values = %v, want [25 40]", values)
	}

	msg := conflict.Error()
	for _, want := range []string{"10A", "25", "40"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestTranscribeConflictAbortsWholeCall(t *testing.T) {
	// A valid pair alongside a conflicting one still fails: no partial result.
	tr := New()
	result, err := tr.Transcribe(
		"Unit 1A reads 10 cubic meter, Unit 2B reads 20 cubic meter, Unit 2B reads 21 cubic meter")
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if len(result.Pairs) != 0 {
		t.Errorf("partial result returned: %v", result.Pairs)
	}
}

func TestTranscribeIdempotent(t *testing.T) {
	const input = "Unit 19A reads 30 cubic meter, 19B is 5 cubic meter"

	tr := New()
	first, err := tr.Transcribe(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.Transcribe(input)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.Pairs, second.Pairs) {
		t.Errorf("results differ across runs: %v vs %v", first.Pairs, second.Pairs)
	}
	if len(first.Trace) != len(second.Trace) {
		t.Errorf("trace not reset between calls: %d then %d steps",
			len(first.Trace), len(second.Trace))
	}
}

func TestTranscribeDuplicateObservation(t *testing.T) {
	tr := New()
	result, err := tr.Transcribe("Unit 10A reads 25 cubic meter, Unit 10A reads 25 cubic meter")
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, step := range result.Trace {
		if step.Kind == types.StepObservation &&
			strings.Contains(step.Message, "duplicate") {
			found = true
		}
	}
	if !found {
		t.Error("expected an OBSERVATION noting duplicate removal")
	}
}

func TestExtract(t *testing.T) {
	// Extraction keeps duplicates; validation owns deduplication.
	pairs := Extract("Unit 5C reads 100 cubic meter, Unit 5C reads 100 cubic meter")
	want := []RawPair{
		{Unit: "5C", Literal: "100"},
		{Unit: "5C", Literal: "100"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Extract = %v, want %v", pairs, want)
	}

	if got := Extract("nothing to see"); len(got) != 0 {
		t.Errorf("Extract on plain text = %v, want none", got)
	}
}

func TestWireFormat(t *testing.T) {
	tr := New()
	result, err := tr.Transcribe("Unit 19A reads 30 cubic meter, 19B is 5 cubic meter")
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(result.Pairs)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"unit":"19A","reading":30},{"unit":"19B","reading":5}]`
	if string(data) != want {
		t.Errorf("wire form = %s, want %s", data, want)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]types.ReadingPair{
		{Unit: "1A", Reading: 10},
		{Unit: "2B", Reading: 20},
	})
	if s.TotalUnits != 2 || s.TotalReading != 30 || s.AverageReading != 15 {
		t.Errorf("summary = %+v", s)
	}
	if !reflect.DeepEqual(s.Units, []string{"1A", "2B"}) {
		t.Errorf("units = %v", s.Units)
	}

	empty := Summarize(nil)
	if empty.TotalUnits != 0 || empty.AverageReading != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
