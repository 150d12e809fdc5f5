// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/report-engine/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent classification and transcription runs",
	Long: `History lists recent runs from the local SQLite run log, newest
first. Filter by kind with --kind tag or --kind readings.`,
	RunE: runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run history to YAML or JSON",
	RunE:  runHistoryExport,
}

func init() {
	historyCmd.Flags().String("kind", "", "filter by run kind: tag or readings")
	historyCmd.Flags().Int("limit", 0, "maximum entries to list (default 20)")
	historyCmd.Flags().Bool("json", false, "emit entries as JSON")

	historyExportCmd.Flags().String("kind", "", "filter by run kind: tag or readings")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().StringP("out", "o", "", "write to this file instead of stdout")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.Recent(cmd.Context(), kind, limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-8s  %-40s  %s\n", "When", "Kind", "Input", "ID")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, e := range entries {
		input := e.Input
		if len(input) > 40 {
			input = input[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-8s  %-40s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Kind, input, e.ID)
	}
	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(entries))
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	kind, _ := cmd.Flags().GetString("kind")
	format, _ := cmd.Flags().GetString("format")

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	return store.Export(cmd.Context(), out, kind, history.ExportFormat(format))
}
