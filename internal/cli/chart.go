package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/chart"
)

// likesSource serves the likes tally behind the comments chart.
type likesSource interface {
	Chart(ctx context.Context) (map[string]int64, error)
}

func newChartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show the activities and likes charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newBackendClient()
			if err != nil {
				return err
			}
			return runChart(cmd.Context(), cmd.OutOrStdout(), c)
		},
	}
}

func runChart(ctx context.Context, w io.Writer, src likesSource) error {
	counts, err := src.Chart(ctx)
	if err != nil {
		return fmt.Errorf("fetching likes: %w", err)
	}
	likes := chart.Likes(counts)

	if isJSON() {
		return printJSON(w, map[string][]chart.Row{
			"activities": chart.Activities(),
			"likes":      likes,
		})
	}

	fmt.Fprintln(w, chart.Table("How I spend my week (hours)", chart.Activities()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, chart.Table("What visitors liked", likes))
	return nil
}
