package commands

import (
	"flag"
	"fmt"
	"io"
)

// RunFormat runs the format command: render a raw hex value in
// canonical text form.
func RunFormat(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tablePath := fs.String("table", "", "Path to the flag table declaration (YAML)")
	retain := fs.Bool("retain", false, "Keep unknown bits instead of truncating them")

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if *tablePath == "" {
		fmt.Fprintln(stderr, "Error: no -table specified")
		return exitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected exactly one 0x hex value")
		return exitCommandError
	}

	r, err := Open(*tablePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if err := r.Format(stdout, fs.Arg(0), *retain); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitValidation
	}

	return exitSuccess
}
