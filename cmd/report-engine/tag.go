// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/report-engine/internal/classify"
	"github.com/pdiddy/report-engine/internal/history"
	"github.com/pdiddy/report-engine/pkg/types"
)

var tagCmd = &cobra.Command{
	Use:   "tag [text]",
	Short: "Suggest descriptive tags for a maintenance report sentence",
	Long: `Tag classifies a freeform maintenance description into ranked tags
(equipment, condition, location, severity) using the declarative rule
table. Suggestions are confidence-scored; the top five tags are selected.

With --interactive, tag reads descriptions from stdin until 'quit'.`,
	RunE: runTag,
}

func init() {
	tagCmd.Flags().Bool("json", false, "emit the full classification as JSON")
	tagCmd.Flags().Bool("trace", false, "print the reasoning trace")
	tagCmd.Flags().BoolP("interactive", "i", false, "read descriptions from stdin until 'quit'")

	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary(cmd)
	if err != nil {
		return err
	}
	engine := classify.New(lib, classifyConfig())

	process := func(text string) error {
		result := engine.Classify(text)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
		} else {
			printClassification(result)
		}

		if showTrace, _ := cmd.Flags().GetBool("trace"); showTrace {
			renderTrace(os.Stdout, result.Trace)
		}

		recordRun(cmd, history.KindTag, text, result, result.Trace)
		return nil
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return runInteractive("TAG SUGGESTION", []string{
			"Rusted valve found near compressor 2",
			"Loud grinding noise from pump station",
			"Scheduled maintenance on storage tank",
		}, process)
	}

	if len(args) == 0 {
		return fmt.Errorf("description required: pass text as an argument or use --interactive")
	}
	return process(strings.Join(args, " "))
}

func printClassification(result types.Classification) {
	fmt.Printf("SUGGESTED TAGS: %v\n", result.Tags)
	fmt.Printf("KEYWORDS FOUND: %v\n", result.Keywords)

	if len(result.Suggestions) == 0 {
		fmt.Println("\nNo rules matched this description.")
		return
	}

	fmt.Println("\nDETAILED ANALYSIS:")
	for _, s := range result.Suggestions {
		fmt.Printf("  • %s: %.2f confidence (Priority: %d, Keywords: %v)\n",
			s.Tag, s.Confidence, s.Priority, s.MatchedKeywords)
	}
}
