package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"tuicalc/internal/calc"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions as if typed on the keypad",
	Long: `Evaluate each expression by replaying it key by key through a fresh
calculator, then pressing =. Keys the keypad would reject (a leading
operator, a second operator in a row) are dropped exactly as in the UI.

With no arguments, expressions are read one per line from stdin.`,
	Example: `  tuicalc eval 2+2 2x3
  echo "1/4" | tuicalc eval`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("color", "auto", "colorize output (auto|on|off)")
	evalCmd.Flags().Bool("no-fail", false, "exit 0 even when an expression fails to evaluate")
	evalCmd.Flags().Bool("verbose", false, "log each evaluation to stderr")
}

var errNoInput = errors.New("no expressions given and stdin is a terminal")

func runEval(cmd *cobra.Command, args []string) error {
	colorMode, _ := cmd.Flags().GetString("color")
	noFail, _ := cmd.Flags().GetBool("no-fail")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if err := applyColorMode(colorMode); err != nil {
		return err
	}

	exprs := args
	if len(exprs) == 0 {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errNoInput
		}
		var err error
		if exprs, err = readLines(in); err != nil {
			return err
		}
	}

	var observers []calc.Observer
	if verbose {
		observers = append(observers, calc.LogObserver{Logger: log.New(cmd.ErrOrStderr(), "tuicalc: ", 0)})
	}

	ok := color.New(color.FgGreen, color.Bold)
	bad := color.New(color.FgRed)
	failed := 0
	for _, expr := range exprs {
		text, err := replay(expr, observers...)
		if err != nil {
			failed++
			bad.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expr, err)
			fmt.Fprintln(cmd.OutOrStdout(), text)
			continue
		}
		ok.Fprintln(cmd.OutOrStdout(), text)
	}

	if failed > 0 && !noFail {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// replay types expr into a new session one key at a time and evaluates it,
// unless the last key already was '='. It returns the final buffer text,
// which on failure is the unevaluated input.
func replay(expr string, observers ...calc.Observer) (string, error) {
	s := calc.NewSession(observers...)
	var err error
	evaluated := false
	for _, r := range expr {
		if r == ' ' || r == '\t' {
			continue
		}
		in, ok := calc.InputForLabel(string(r))
		if !ok {
			return s.Text(), fmt.Errorf("%w: no key for %q", calc.ErrParse, r)
		}
		err = s.Apply(in)
		evaluated = in.Action == calc.ActionEvaluate
	}
	if !evaluated {
		err = s.Evaluate()
	}
	return s.Text(), err
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return out, nil
}

func applyColorMode(mode string) error {
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto|on|off)", mode)
	}
	return nil
}
