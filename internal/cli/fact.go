package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/fact"
)

func newFactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fact",
		Short: "Print a random fact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fact.Random(nil)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]string{"fact": f})
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		},
	}
}
