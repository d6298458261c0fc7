// Command jsoncat parses a JSON file with the examples/json grammar and
// re-prints it through encoding/json, a small demonstration of the
// siskin DSL consuming a non-trivial recursive grammar.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oskoi/siskin"
	grammar "github.com/oskoi/siskin/examples/json"
	"github.com/oskoi/siskin/render"
)

func main() {
	root := &cobra.Command{
		Use:   "jsoncat FILE",
		Short: "parse a JSON file with the siskin JSON grammar and pretty-print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			input := string(data)

			g := grammar.New()
			ctx, err := siskin.Apply(input, g.Value, siskin.Exact(true), siskin.RootID("root"))
			if err != nil {
				fmt.Fprint(os.Stderr, render.Source(input, err, args[0]))
				os.Exit(1)
			}

			value := grammar.Reduce(ctx.Root())
			out, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
