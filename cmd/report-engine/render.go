package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/report-engine/pkg/types"
)

// stepSymbols decorates trace kinds for terminal display. The engine
// itself keeps kinds undecorated so tests and stored traces stay clean.
var stepSymbols = map[types.StepKind]string{
	types.StepThought:     "💭 THOUGHT",
	types.StepAction:      "🔍 ACTION",
	types.StepObservation: "👁️  OBSERVATION",
	types.StepConclusion:  "✅ CONCLUSION",
}

// renderTrace prints a reasoning trace with decorative symbols.
func renderTrace(w io.Writer, steps []types.Step) {
	fmt.Fprintln(w, "\nREASONING LOG:")
	for _, s := range steps {
		label, ok := stepSymbols[s.Kind]
		if !ok {
			label = string(s.Kind)
		}
		fmt.Fprintf(w, "  - %s: %s\n", label, s.Message)
	}
}

// runInteractive reads lines from stdin and passes each to handle until
// the user quits. Empty lines are skipped; errors from handle are printed
// and the loop continues so the user can resubmit corrected input.
func runInteractive(prompt string, examples []string, handle func(string) error) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(prompt)
	fmt.Println(strings.Repeat("=", 60))
	for _, ex := range examples {
		fmt.Println("- " + ex)
	}
	fmt.Println("\nType 'quit' to exit")
	fmt.Println(strings.Repeat("=", 60))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		case "":
			fmt.Println("Please enter some text.")
			continue
		}

		if err := handle(line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Please check your input and try again.")
		}
	}
	return scanner.Err()
}
