// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trace records the ordered reasoning steps an engine takes while
// producing a result. The trace is append-only during a call and reset at
// the start of the next one; callers receive a copy so returned traces
// stay stable after the engine moves on.
package trace

import (
	"fmt"

	"github.com/pdiddy/report-engine/pkg/types"
)

// Trace collects typed reasoning steps for one engine call. The zero value
// is ready to use. A Trace is owned by a single engine instance and is not
// safe for concurrent use.
type Trace struct {
	steps []types.Step
}

// Reset discards all recorded steps. Engines call this at the start of
// every top-level operation so entries never leak across calls.
func (t *Trace) Reset() {
	t.steps = t.steps[:0]
}

// Record appends a step of the given kind with a formatted message.
func (t *Trace) Record(kind types.StepKind, format string, args ...any) {
	t.steps = append(t.steps, types.Step{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// Thought records a THOUGHT step.
func (t *Trace) Thought(format string, args ...any) {
	t.Record(types.StepThought, format, args...)
}

// Action records an ACTION step.
func (t *Trace) Action(format string, args ...any) {
	t.Record(types.StepAction, format, args...)
}

// Observation records an OBSERVATION step.
func (t *Trace) Observation(format string, args ...any) {
	t.Record(types.StepObservation, format, args...)
}

// Conclusion records a CONCLUSION step.
func (t *Trace) Conclusion(format string, args ...any) {
	t.Record(types.StepConclusion, format, args...)
}

// Steps returns a copy of the recorded steps in order.
func (t *Trace) Steps() []types.Step {
	out := make([]types.Step, len(t.steps))
	copy(out, t.steps)
	return out
}
