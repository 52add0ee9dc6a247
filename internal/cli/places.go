package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/places"
)

func newPlacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "places",
		Short: "List the places on the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			markers := places.Markers()
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), markers)
			}
			printMarkers(cmd.OutOrStdout(), markers)
			return nil
		},
	}
}
