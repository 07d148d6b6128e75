package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/decint/calc"
	"github.com/calebcase/decint/integer"
)

// Error is the class of command errors.
var Error = errs.Class("decint")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "decint",
		Short:        "arbitrary precision decimal integer calculator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newEvalCmd(), newOpCmd())

	return rootCmd
}

func newEvalCmd() *cobra.Command {
	var postfix bool

	evalCmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "evaluate an infix expression",
		Long: `Evaluate an infix expression using + - * / % and brackets.

The arguments are joined with spaces into one expression. Without arguments
every non-empty line of standard input is evaluated. Use -- before an
expression that starts with a minus sign.`,
		Example: `  decint eval '2 * (3 + 4)'
  decint eval -- '-1000 + 9999'
  echo '1000 % 300' | decint eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := calc.New(integer.Parse)

			if len(args) > 0 {
				return runEval(cmd.OutOrStdout(), c, strings.Join(args, " "), postfix)
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

			for line := 1; scanner.Scan(); line++ {
				expr := strings.TrimSpace(scanner.Text())
				if expr == "" {
					continue
				}

				err := runEval(cmd.OutOrStdout(), c, expr, postfix)
				if err != nil {
					return Error.New("line %d: %v", line, err)
				}
			}

			return Error.Wrap(scanner.Err())
		},
	}

	evalCmd.Flags().BoolVar(&postfix, "postfix", false, "print the postfix form instead of evaluating")

	return evalCmd
}

func runEval(w io.Writer, c *calc.Calculator[integer.Int], expr string, postfix bool) error {
	if postfix {
		tokens, err := calc.Tokenize(expr)
		if err != nil {
			return err
		}

		tokens, err = calc.Postfix(tokens)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, calc.Join(tokens))

		return err
	}

	v, err := c.Eval(expr)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, v)

	return err
}

func newOpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "op A OP B",
		Short: "apply one operator to two integers",
		Long: `Apply one operator to two integers.

OP is one of + - * / % < <= > >= == !=. Comparisons print 1 when true and 0
when false.`,
		Example: `  decint op -1000 + 9999
  decint op 100 '<' 200`,
		// Operands may start with a minus sign.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}

			if len(args) != 3 {
				return Error.New("expected A OP B, got %d arguments", len(args))
			}

			out, err := apply(args[0], args[1], args[2])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
}

// apply evaluates a op b and returns the text to print.
func apply(as, op, bs string) (out string, err error) {
	a, err := integer.Parse(as)
	if err != nil {
		return "", err
	}

	b, err := integer.Parse(bs)
	if err != nil {
		return "", err
	}

	var v integer.Int

	switch op {
	case "+":
		v = a.Add(b)
	case "-":
		v = a.Sub(b)
	case "*":
		v = a.Mul(b)
	case "/":
		v, err = a.Quo(b)
	case "%":
		v, err = a.Rem(b)
	case "<":
		return boolText(a.Less(b)), nil
	case "<=":
		return boolText(a.LessEq(b)), nil
	case ">":
		return boolText(a.Greater(b)), nil
	case ">=":
		return boolText(a.GreaterEq(b)), nil
	case "==":
		return boolText(a.Equal(b)), nil
	case "!=":
		return boolText(a.NotEqual(b)), nil
	default:
		return "", Error.New("unknown operator %q", op)
	}

	if err != nil {
		return "", err
	}

	return v.String(), nil
}

func boolText(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
