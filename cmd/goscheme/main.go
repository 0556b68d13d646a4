// Command goscheme is the terminal front end for the interpreter: a
// REPL by default, a batch file loader when given one argument, and a
// load-then-REPL session when given a file and a trailing "-".
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pkelchte/goscheme/interp"
	"github.com/pkelchte/goscheme/reader"
	"github.com/pkelchte/goscheme/value"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "goscheme [file] [-]",
		Short:         "A small Scheme interpreter",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	switch len(args) {
	case 0:
		in := interp.New(newStdinSource(stdin, stdout), stdout)
		return repl(in, stdout)

	case 1:
		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		in := interp.New(&reader.StringLineSource{Lines: lines}, stdout)
		return loadAll(in)

	default: // 2
		if args[1] != "-" {
			return errors.Errorf("unexpected second argument %q, expected \"-\"", args[1])
		}
		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		in := interp.New(&reader.StringLineSource{Lines: lines}, stdout)
		if err := loadAll(in); err != nil {
			return err
		}
		in.SetSource(newStdinSource(stdin, stdout))
		return repl(in, stdout)
	}
}

// loadAll reads and evaluates every top-level expression in in's current
// source, exiting abnormally (a non-nil error) on the first one that
// fails, per spec.md §6.
func loadAll(in *interp.Interpreter) error {
	for {
		expr, err := in.ReadExpression("", "")
		if err != nil {
			return err
		}
		if expr == value.EOF {
			return nil
		}
		if _, err := in.Evaluate(expr); err != nil {
			return err
		}
	}
}

// repl is spec.md §6's interactive loop: "> " at the top level, "| " for
// continuation lines, NONE never printed, everything else printed with
// Stringify(v, true), "Goodbye" on EOF.
func repl(in *interp.Interpreter, stdout io.Writer) error {
	for {
		expr, err := in.ReadExpression("> ", "| ")
		if err != nil {
			fmt.Fprintln(stdout, err)
			continue
		}
		if expr == value.EOF {
			fmt.Fprintln(stdout, "Goodbye")
			return nil
		}
		result, err := in.Evaluate(expr)
		if err != nil {
			fmt.Fprintln(stdout, err)
			continue
		}
		if result != value.None {
			fmt.Fprintln(stdout, value.Stringify(result, true))
		}
	}
}

// stdinSource is the host-side reader.LineSource backing the REPL: it
// prints the requested prompt, then blocks for one line from in.
type stdinSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newStdinSource(in io.Reader, out io.Writer) *stdinSource {
	return &stdinSource{scanner: bufio.NewScanner(in), out: out}
}

func (s *stdinSource) NextLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return lines, nil
}
