package commands

import (
	"flag"
	"fmt"
	"io"
)

// RunShow runs the show command: list the declared entries of a table.
func RunShow(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tablePath := fs.String("table", "", "Path to the flag table declaration (YAML)")

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if *tablePath == "" {
		fmt.Fprintln(stderr, "Error: no -table specified")
		return exitCommandError
	}

	r, err := Open(*tablePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	r.Show(stdout)
	return exitSuccess
}
