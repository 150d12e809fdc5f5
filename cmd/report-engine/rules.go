package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the loaded tag rule table",
	Long: `Rules lists the rule table the engine classifies with: each rule's
tag, priority, trigger counts, and description. Use the global --rules
flag to inspect an alternate table.`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-8s  %-8s  %-8s  %s\n",
		"Tag", "Priority", "Keywords", "Patterns", "Description")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))

	for _, r := range lib.Rules() {
		fmt.Fprintf(os.Stdout, "%-16s  %-8d  %-8d  %-8d  %s\n",
			r.Tag, r.Priority, len(r.Keywords), len(r.Patterns), r.Description)
	}

	fmt.Fprintf(os.Stdout, "\n%d rules\n", lib.Len())
	return nil
}
