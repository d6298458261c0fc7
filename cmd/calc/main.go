// Command calc evaluates a single arithmetic expression using the
// examples/calc grammar, a small demonstration of the siskin DSL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oskoi/siskin"
	"github.com/oskoi/siskin/examples/calc"
	"github.com/oskoi/siskin/render"
)

func main() {
	root := &cobra.Command{
		Use:   "calc EXPRESSION",
		Short: "evaluate an arithmetic expression with the siskin calculator grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			g := calc.New()
			ctx, err := siskin.Apply(expr, g.Expr, siskin.Exact(true))
			if err != nil {
				fmt.Fprint(os.Stderr, render.Source(expr, err, ""))
				os.Exit(1)
			}
			fmt.Println(calc.Eval(ctx.Root()))
			return nil
		},
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
