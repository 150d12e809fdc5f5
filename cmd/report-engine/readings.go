// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/report-engine/internal/history"
	"github.com/pdiddy/report-engine/internal/transcribe"
	"github.com/pdiddy/report-engine/pkg/types"
)

var readingsCmd = &cobra.Command{
	Use:   "readings [text]",
	Short: "Extract validated unit readings from meter reading text",
	Long: `Readings extracts (unit, reading) pairs from natural language meter
reading text like "Unit 19A reads 30 cubic meter, 19B is 5 cubic meter".

Exact duplicate reports are collapsed; conflicting readings for the same
unit are rejected so ambiguous data is never silently arbitrated. The
validated set is printed as a JSON array of {"unit", "reading"} objects.

With --interactive, readings are read from stdin until 'quit'.`,
	RunE: runReadings,
}

func init() {
	readingsCmd.Flags().StringP("output", "o", "", "also write the JSON array to this file")
	readingsCmd.Flags().Bool("summary", false, "print totals and averages for the validated set")
	readingsCmd.Flags().Bool("trace", false, "print the reasoning trace")
	readingsCmd.Flags().BoolP("interactive", "i", false, "read inputs from stdin until 'quit'")

	rootCmd.AddCommand(readingsCmd)
}

func runReadings(cmd *cobra.Command, args []string) error {
	transcriber := transcribe.New()

	process := func(text string) error {
		result, err := transcriber.Transcribe(text)

		if showTrace, _ := cmd.Flags().GetBool("trace"); showTrace {
			renderTrace(os.Stdout, result.Trace)
		}
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(result.Pairs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = viper.GetString("transcribe.output_file")
		}
		if outPath != "" {
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
		}

		if showSummary, _ := cmd.Flags().GetBool("summary"); showSummary {
			printSummary(result)
		}

		recordRun(cmd, history.KindReadings, text, result.Pairs, result.Trace)
		return nil
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return runInteractive("UNIT READING PARSER", []string{
			"Unit 19A reads 30 cubic meter, 19B is 5 cubic meter",
			"10A reads 25 cubic meter, Unit 10B is 15 cubic meter",
			"Unit 5C reads 100 cubic meter",
		}, process)
	}

	if len(args) == 0 {
		return fmt.Errorf("reading text required: pass text as an argument or use --interactive")
	}
	return process(strings.Join(args, " "))
}

func printSummary(result types.Transcript) {
	s := transcribe.Summarize(result.Pairs)
	fmt.Println("\nSUMMARY:")
	fmt.Printf("  Units:           %v\n", s.Units)
	fmt.Printf("  Total units:     %d\n", s.TotalUnits)
	fmt.Printf("  Total reading:   %d\n", s.TotalReading)
	fmt.Printf("  Average reading: %.1f\n", s.AverageReading)
}
