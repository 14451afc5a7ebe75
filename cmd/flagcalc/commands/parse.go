package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// RunParse runs the parse command: evaluate a flag expression against
// a table and print its bits, canonical form and decomposition.
func RunParse(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tablePath := fs.String("table", "", "Path to the flag table declaration (YAML)")

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if *tablePath == "" {
		fmt.Fprintln(stderr, "Error: no -table specified")
		return exitCommandError
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: no flag expression given")
		return exitCommandError
	}

	r, err := Open(*tablePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	// Join remaining arguments so unquoted expressions like A | B work.
	input := strings.Join(fs.Args(), " ")
	if err := r.Parse(stdout, input); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitValidation
	}

	return exitSuccess
}
