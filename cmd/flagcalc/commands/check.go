package commands

import (
	"flag"
	"fmt"
	"io"
)

// RunCheck runs the check command: report whether a raw hex value
// contains only declared bits. Unknown bits exit with the validation
// code.
func RunCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tablePath := fs.String("table", "", "Path to the flag table declaration (YAML)")

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

	ok, err := r.Check(stdout, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if !ok {
		return exitValidation
	}

	return exitSuccess
}
