package cli

import (
	"github.com/spf13/cobra"
)

func puts(keys ...int) []Op {
	ops := make([]Op, len(keys))
	for i, k := range keys {
		ops[i] = Op{Op: "put", Key: k, Value: "v"}
	}
	return ops
}

// demoScenarios are the textbook walkthroughs: out of order inserts,
// delete then lookup, sorted inserts and deleting a root with two children.
func demoScenarios() []*Scenario {
	return []*Scenario{
		{Name: "iteration order", Ops: puts(1, 3, 2, 5, 10)},
		{Name: "delete then get", Ops: []Op{
			{Op: "put", Key: 1, Value: "2"},
			{Op: "get", Key: 1},
			{Op: "delete", Key: 1},
			{Op: "get", Key: 1, ExpectMissing: true},
		}},
		{Name: "sorted inserts", Variant: "avl", Ops: puts(1, 2, 3, 4, 5)},
		{Name: "delete root with two children", Ops: append(puts(5, 3, 8, 1, 4, 7, 9),
			Op{Op: "delete", Key: 5},
			Op{Op: "contains", Key: 5, ExpectMissing: true},
		)},
	}
}

func newDemoCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			for _, sc := range demoScenarios() {
				v, err := resolveVariant(variant, sc)
				if err != nil {
					return err
				}
				logger.Debug("Replaying", "scenario", sc.Name, "variant", v)
				res, err := replay(cmd.Context(), sc, v)
				if err != nil {
					return err
				}
				render(cmd.OutOrStdout(), sc.Name, res)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "tree variant for every scenario: plain or avl")
	return cmd
}
