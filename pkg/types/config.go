package types

// ClassifyConfig holds settings for the tag classification engine.
type ClassifyConfig struct {
	// RulesFile is an optional path to a YAML rule table. Empty uses the
	// built-in maintenance rule set.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty"`

	// MaxTags is the maximum number of tags returned per classification
	// (default 5).
	MaxTags int `json:"max_tags" yaml:"max_tags"`

	// MinConfidence is the threshold below which a suggestion is discarded
	// (default 0.1).
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence"`
}

// TranscribeConfig holds settings for the meter reading transcriber.
type TranscribeConfig struct {
	// OutputFile is an optional path the serialized reading set is written
	// to in addition to stdout.
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// DataDir is the directory holding the SQLite database (default "history").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of history entries returned
	// by queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all component configurations.
type Config struct {
	Classify   ClassifyConfig   `json:"classify" yaml:"classify"`
	Transcribe TranscribeConfig `json:"transcribe" yaml:"transcribe"`
	History    HistoryConfig    `json:"history" yaml:"history"`
}
