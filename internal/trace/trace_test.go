// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/report-engine/pkg/types"
)

func TestRecordOrder(t *testing.T) {
	var tr Trace
	tr.Thought("analyzing %q", "input")
	tr.Action("matching rules")
	tr.Observation("found %d matches", 3)
	tr.Conclusion("done")

	steps := tr.Steps()
	require.Len(t, steps, 4)

	assert.Equal(t, types.StepThought, steps[0].Kind)
	assert.Equal(t, `analyzing "input"`, steps[0].Message)
	assert.Equal(t, types.StepAction, steps[1].Kind)
	assert.Equal(t, types.StepObservation, steps[2].Kind)
	assert.Equal(t, "found 3 matches", steps[2].Message)
	assert.Equal(t, types.StepConclusion, steps[3].Kind)
}

func TestReset(t *testing.T) {
	var tr Trace
	tr.Thought("first call")
	tr.Reset()
	tr.Action("second call")

	steps := tr.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, types.StepAction, steps[0].Kind)
	assert.Equal(t, "second call", steps[0].Message)
}

func TestStepsReturnsCopy(t *testing.T) {
	var tr Trace
	tr.Thought("original")

	steps := tr.Steps()
	steps[0].Message = "mutated"

	assert.Equal(t, "original", tr.Steps()[0].Message)
}

func TestZeroValueUsable(t *testing.T) {
	var tr Trace
	assert.Empty(t, tr.Steps())
	tr.Reset()
	assert.Empty(t, tr.Steps())
}
