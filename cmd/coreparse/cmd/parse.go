package cmd

import (
	"fmt"

	"github.com/coregx/coreparse/calc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParseCmd(o *options) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Print the syntax tree of an expression",
		Long: `Parses an arithmetic expression and prints its syntax tree.

Formats:
  text  - S-expression, e.g. (+ 1 (* 2 3))
  yaml  - nested op/value/at/args mappings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = o.config.Output.Format
			}

			node, err := o.parse(cmd, src)
			if err != nil {
				return err
			}
			switch format {
			case FormatText:
				fmt.Fprintln(cmd.OutOrStdout(), node.String())
			case FormatYAML:
				data, err := yaml.Marshal(calc.Tree(node))
				if err != nil {
					return fmt.Errorf("failed to encode tree: %w", err)
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return fmt.Errorf("failed to write tree: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatText, FormatYAML)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text, yaml)")
	return c
}
