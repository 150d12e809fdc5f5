package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/report-engine/internal/classify"
)

var explainCmd = &cobra.Command{
	Use:   "explain TAG TEXT...",
	Short: "Explain why a tag would or would not be suggested for a text",
	Long: `Explain shows the evidence a specific rule produces against a text:
its description, the keywords it matched, the number of matched patterns,
and the resulting confidence. An unknown tag name is reported, not an
error, so exploration never aborts.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary(cmd)
	if err != nil {
		return err
	}

	engine := classify.New(lib, classifyConfig())
	fmt.Print(engine.Explain(args[0], strings.Join(args[1:], " ")))
	return nil
}
