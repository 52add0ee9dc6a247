package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/panel"
)

func newDeleteCommentsCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-comments",
		Short: "Delete every comment",
		Long:  "Deletes all comments on the backend, waits for the result, then shows the refreshed list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete all comments? [y/N] ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			c, err := newBackendClient()
			if err != nil {
				return err
			}
			return runDeleteComments(cmd.Context(), cmd.OutOrStdout(), c, getDefaultLimit())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runDeleteComments(ctx context.Context, w io.Writer, src panel.Source, limit int) error {
	var p *panel.Panel
	reload := panel.ReloaderFunc(func(ctx context.Context) error {
		fmt.Fprintln(w, "✓ Comments deleted.")
		return p.Refresh(ctx, limit)
	})
	p = panel.New(src, newTermView(w), reload)

	return p.DeleteAll(ctx)
}

// confirm asks a yes/no question, defaulting to no.
func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprint(w, prompt)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading input: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
