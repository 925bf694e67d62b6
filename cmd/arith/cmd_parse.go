package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sci-42ver/pratt-parsing-demo/arith/format"
	"github.com/sci-42ver/pratt-parsing-demo/arith/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse one expression and print its syntax tree",
		Long: `Parse one arithmetic expression and print its syntax tree.

Pass the expression as a single argument, or "-" to read it from
standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			if src == "-" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				src = strings.TrimRight(string(data), "\n")
			}

			var encoder format.Encoder
			switch outputFormat {
			case "sexpr":
				encoder = format.NewSExprEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "tree":
				encoder = format.NewTreeEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			node, err := parser.ParseString(parser.NewGrammar(), src)
			if err != nil {
				return wrapWithSource(err, src)
			}

			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format: sexpr, json, or tree")

	return cmd
}
