// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/report-engine/pkg/types"
)

// ruleFile is the on-disk shape of an alternate rule table.
type ruleFile struct {
	Rules []types.TagRule `yaml:"rules"`
}

// Load reads a YAML rule table from path and builds a Library from it.
// The file holds a top-level "rules" list of tag rule records.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule table %s: %w", path, err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rule table %s: %w", path, err)
	}

	lib, err := New(f.Rules)
	if err != nil {
		return nil, fmt.Errorf("rule table %s: %w", path, err)
	}
	return lib, nil
}
