// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcribe

import "github.com/pdiddy/report-engine/pkg/types"

// Summarize aggregates a validated transcript: unit count, total and
// average reading, and the unit list in transcript order.
func Summarize(pairs []types.ReadingPair) types.TranscriptSummary {
	s := types.TranscriptSummary{
		TotalUnits: len(pairs),
		Units:      make([]string, 0, len(pairs)),
	}
	for _, p := range pairs {
		s.TotalReading += p.Reading
		s.Units = append(s.Units, p.Unit)
	}
	if len(pairs) > 0 {
		s.AverageReading = float64(s.TotalReading) / float64(len(pairs))
	}
	return s
}
