// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/report-engine/pkg/types"
)

// exportLimit bounds a full-history export.
const exportLimit = 100000

// ExportFormat selects the export encoding.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// ExportEntry is one run in exported form, with the stored result decoded
// so YAML and JSON output stay readable.
type ExportEntry struct {
	ID        string       `json:"id" yaml:"id"`
	Kind      string       `json:"kind" yaml:"kind"`
	Input     string       `json:"input" yaml:"input"`
	Result    any          `json:"result" yaml:"result"`
	Trace     []types.Step `json:"trace,omitempty" yaml:"trace,omitempty"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
}

// Export writes the run history to w in the requested format, optionally
// filtered by kind.
func (s *Store) Export(ctx context.Context, w io.Writer, kind string, format ExportFormat) error {
	if format != ExportYAML && format != ExportJSON {
		return fmt.Errorf("unknown export format %q", format)
	}

	entries, err := s.Recent(ctx, kind, exportLimit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	out := make([]ExportEntry, len(entries))
	for i, e := range entries {
		var result any
		if err := json.Unmarshal(e.Result, &result); err != nil {
			return fmt.Errorf("decoding result for run %s: %w", e.ID, err)
		}
		out[i] = ExportEntry{
			ID:        e.ID,
			Kind:      e.Kind,
			Input:     e.Input,
			Result:    result,
			Trace:     e.Trace,
			CreatedAt: e.CreatedAt,
		}
	}

	switch format {
	case ExportYAML:
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
}
