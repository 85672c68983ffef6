package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/coreparse/calc"
	"github.com/coregx/coreparse/diag"
	"github.com/spf13/cobra"
)

// errReported marks a failure whose diagnostic has already been printed.
var errReported = errors.New("error reported")

type options struct {
	cfgFile string
	verbose bool
	noColor bool

	config *Config
	parser *calc.Parser
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{parser: calc.NewParser()}

	root := &cobra.Command{
		Use:   "coreparse",
		Short: "Parse and evaluate arithmetic expressions",
		Long: `coreparse parses arithmetic expressions with + - * /, prefix minus
and parentheses, and either evaluates them or prints their syntax tree.

Expressions are read from the arguments, or from stdin when no
arguments (or a single "-") are given.

Examples:
  coreparse eval "1 + 2 * 3"
  coreparse parse --format yaml "(1 + 2) * 3"
  echo "10 / 4" | coreparse eval --precision 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := Resolve(o.cfgFile)
			if err != nil {
				return err
			}
			o.config = cfg
			if o.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "config: %s\n", source)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default: ./coreparse.toml)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(newEvalCmd(o), newParseCmd(o), newVersionCmd())
	return root
}

// Execute runs the CLI against the process arguments.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// readInput returns the expression text from args or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

func (o *options) styles(w io.Writer) diag.Styles {
	if o.noColor || !o.config.Output.Color || w != io.Writer(os.Stderr) {
		return diag.PlainStyles()
	}
	return diag.DefaultStyles()
}

// parse parses src, printing a diagnostic on failure.
func (o *options) parse(cmd *cobra.Command, src string) (calc.Node, error) {
	node, err := o.parser.Parse(src)
	if err != nil {
		return nil, o.report(cmd, src, err)
	}
	return node, nil
}

func (o *options) report(cmd *cobra.Command, src string, err error) error {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, diag.Render(src, err, o.styles(w)))
	return errReported
}
