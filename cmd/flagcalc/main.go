// flagcalc is a CLI tool for inspecting flag tables and evaluating
// flag expressions against them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bitflags/bitflags/cmd/flagcalc/commands"
	"github.com/bitflags/bitflags/cmd/flagcalc/interactive"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "parse":
		exitCode = commands.RunParse(args, os.Stdout, os.Stderr)
	case "format":
		exitCode = commands.RunFormat(args, os.Stdout, os.Stderr)
	case "check":
		exitCode = commands.RunCheck(args, os.Stdout, os.Stderr)
	case "repl":
		exitCode = runRepl(args)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("flagcalc version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func runRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	tablePath := fs.String("table", "", "Path to the flag table declaration (YAML)")

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if *tablePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no -table specified")
		return exitCommandError
	}

	r, err := commands.Open(*tablePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}

	session, err := interactive.New(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}

	session.Run()
	return exitSuccess
}

func printUsage() {
	fmt.Println(`flagcalc - flag table inspection and evaluation

Usage: flagcalc <command> [options]

Commands:
  show   -table <file>              List the declared flags of a table
  parse  -table <file> <expr>       Parse a flag expression
  format -table <file> [-retain] <0xhex>
                                    Render a raw value in canonical form
  check  -table <file> <0xhex>      Report bits outside the declared set
  repl   -table <file>              Interactive evaluation loop
  help                              Show this help
  version                           Show version`)
}
