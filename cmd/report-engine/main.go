// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the report-engine CLI.
//
// report-engine turns short freeform maintenance utterances into
// structured data with a deterministic rule engine: tag classification
// for report sentences and validated transcription of meter readings.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/report-engine/internal/history"
	"github.com/pdiddy/report-engine/internal/rules"
	"github.com/pdiddy/report-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the report-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "report-engine",
	Short: "Deterministic structuring of maintenance reports and meter readings",
	Long: `report-engine extracts structured information from short freeform
maintenance text using declarative rule matching, not statistical models.

Two tasks are supported: "tag" classifies a report sentence into ranked
descriptive tags (equipment, condition, location, severity), and
"readings" extracts validated (unit, reading) pairs from meter reading
text. Both produce a step-by-step reasoning trace explaining how the
result was derived.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./report-engine.yaml or ~/.config/report-engine/config.yaml)")
	rootCmd.PersistentFlags().String("rules", "", "YAML rule table replacing the built-in rule set")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the run history database (default: history)")
	rootCmd.PersistentFlags().Bool("no-store", false, "do not record runs in the history database")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("report-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "report-engine"))
		}
	}

	viper.SetEnvPrefix("REPORT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadLibrary returns the rule library: an alternate table from --rules or
// the classify.rules_file config key, or the built-in set.
func loadLibrary(cmd *cobra.Command) (*rules.Library, error) {
	path, _ := cmd.Flags().GetString("rules")
	if path == "" {
		path = viper.GetString("classify.rules_file")
	}
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

// classifyConfig assembles the classification settings from config keys.
func classifyConfig() types.ClassifyConfig {
	return types.ClassifyConfig{
		MaxTags:       viper.GetInt("classify.max_tags"),
		MinConfidence: viper.GetFloat64("classify.min_confidence"),
	}
}

// historyConfig assembles the history settings from flags and config keys.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("history.data_dir")
	}
	if dataDir == "" {
		dataDir = "history"
	}
	return types.HistoryConfig{
		DataDir:    dataDir,
		MaxResults: viper.GetInt("history.max_results"),
	}
}

// recordRun stores one run in the history database unless --no-store is
// set. Storage problems are reported on stderr but never fail the run the
// user asked for.
func recordRun(cmd *cobra.Command, kind, input string, result any, steps []types.Step) {
	noStore, _ := cmd.Flags().GetBool("no-store")
	if noStore {
		return
	}

	store, err := history.Open(historyConfig(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(cmd.Context(), kind, input, result, steps); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
