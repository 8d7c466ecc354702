package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "run <scenario.toml>...",
		Short: "Replay scenario files",
		Long: `Replay each TOML scenario file against a fresh tree.

A scenario lists operations:

  variant = "avl"

  [[ops]]
  op = "put"
  key = 5
  value = "five"

  [[ops]]
  op = "get"
  key = 7
  expect_missing = true

--variant overrides the variant named in the files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			for _, path := range args {
				sc, err := loadScenario(path)
				if err != nil {
					return err
				}
				v, err := resolveVariant(variant, sc)
				if err != nil {
					return err
				}
				logger.Info("Replaying", "scenario", sc.Name, "variant", v, "ops", len(sc.Ops))
				res, err := replay(cmd.Context(), sc, v)
				if err != nil {
					return err
				}
				render(cmd.OutOrStdout(), sc.Name, res)
				if res.Warnings > 0 {
					logger.Warn(fmt.Sprintf("%s: %d unexpected result(s)", sc.Name, res.Warnings))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "tree variant: plain or avl")
	return cmd
}
