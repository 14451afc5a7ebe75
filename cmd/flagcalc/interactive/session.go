// Package interactive provides the read-eval-print loop for flagcalc.
package interactive

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/bitflags/bitflags/cmd/flagcalc/commands"
)

// Session handles interactive mode for flagcalc: one loaded flag
// table and a readline loop evaluating expressions against it.
type Session struct {
	runner commands.Runner
	rl     *readline.Instance
}

// New creates a session over an already-opened table.
func New(runner commands.Runner) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "flagcalc> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Session{runner: runner, rl: rl}, nil
}

// Run starts the interactive loop. It returns when the user exits.
func (s *Session) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.SplitN(input, " ", 2)
		cmd := strings.ToLower(parts[0])
		rest := ""
		if len(parts) > 1 {
			rest = strings.TrimSpace(parts[1])
		}

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "show", "ls":
			s.runner.Show(s.rl.Stdout())

		case "all":
			s.runner.All(s.rl.Stdout())

		case "parse", "p":
			s.report(s.runner.Parse(s.rl.Stdout(), rest))

		case "format", "f":
			s.report(s.runner.Format(s.rl.Stdout(), rest, false))

		case "retain":
			s.report(s.runner.Format(s.rl.Stdout(), rest, true))

		case "check", "c":
			_, err := s.runner.Check(s.rl.Stdout(), rest)
			s.report(err)

		case "union", "intersect", "difference", "symdiff":
			s.binaryOp(cmd, rest)

		case "not", "complement":
			s.report(s.runner.Not(s.rl.Stdout(), rest))

		case "exit", "quit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			// Bare input is treated as an expression to parse.
			s.report(s.runner.Parse(s.rl.Stdout(), input))
		}
	}
}

// binaryOp evaluates a set operation over two ;-separated expressions.
func (s *Session) binaryOp(op, rest string) {
	left, right, ok := strings.Cut(rest, ";")
	if !ok {
		fmt.Fprintf(s.rl.Stderr(), "Usage: %s <expr> ; <expr>\n", op)
		return
	}
	s.report(s.runner.Op(s.rl.Stdout(), op, strings.TrimSpace(left), strings.TrimSpace(right)))
}

func (s *Session) report(err error) {
	if err != nil {
		fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
	}
}

func (s *Session) printHelp() {
	out := s.rl.Stdout()
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  show                      list declared flags")
	fmt.Fprintln(out, "  all                       the value with every declared bit set")
	fmt.Fprintln(out, "  parse <expr>              parse a flag expression (also the default)")
	fmt.Fprintln(out, "  format <0xhex>            canonical form, unknown bits truncated")
	fmt.Fprintln(out, "  retain <0xhex>            canonical form, unknown bits kept")
	fmt.Fprintln(out, "  check <0xhex>             report unknown bits")
	fmt.Fprintln(out, "  union <expr> ; <expr>     set union (also: intersect, difference, symdiff)")
	fmt.Fprintln(out, "  not <expr>                complement (truncating)")
	fmt.Fprintln(out, "  help, exit")
}
