package cmd

import (
	"fmt"
	"strconv"

	"github.com/coregx/coreparse/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd(o *options) *cobra.Command {
	var precision int

	c := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression",
		Long: `Evaluates an arithmetic expression and prints the result.

The number of digits after the decimal point comes from --precision,
else output.precision in the config file; -1 prints the shortest
exact representation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("precision") {
				precision = o.config.Output.Precision
			}
			if precision < -1 {
				return fmt.Errorf("--precision must be -1 or more, got %d", precision)
			}

			node, err := o.parse(cmd, src)
			if err != nil {
				return err
			}
			v, err := calc.Eval(node)
			if err != nil {
				return o.report(cmd, src, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', precision, 64))
			return nil
		},
	}
	c.Flags().IntVarP(&precision, "precision", "p", -1, "digits after the decimal point (-1: shortest)")
	return c
}
