package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/panel"
)

func newCommentsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Show the latest comments",
		Long:  "Fetches up to --limit comments from the backend and prints one block per comment, newest first as the server orders them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = getDefaultLimit()
			}
			c, err := newBackendClient()
			if err != nil {
				return err
			}
			return runComments(cmd.Context(), cmd.OutOrStdout(), c, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLimit, "number of comments to show")

	return cmd
}

type commentsOutput struct {
	Comments      []string `json:"comments"`
	DeleteEnabled bool     `json:"delete_enabled"`
}

func runComments(ctx context.Context, w io.Writer, src panel.Source, limit int) error {
	if !isJSON() {
		return panel.New(src, newTermView(w), nil).Refresh(ctx, limit)
	}

	view := &panel.List{}
	if err := panel.New(src, view, nil).Refresh(ctx, limit); err != nil {
		return err
	}

	out := commentsOutput{Comments: []string{}, DeleteEnabled: view.DeleteEnabled()}
	for _, b := range view.Blocks() {
		out.Comments = append(out.Comments, b.Text)
	}
	return printJSON(w, out)
}
