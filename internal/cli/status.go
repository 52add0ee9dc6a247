package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/loginstatus"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and login status",
		Long:  "Tests the connection to the backend and shows whether the stored session is logged in.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newBackendClient()
			if err != nil {
				return err
			}
			return runStatus(cmd.Context(), cmd.OutOrStdout(), c.BaseURL(), getSessionCookie() != "", c)
		},
	}
}

type statusOutput struct {
	Server    string              `json:"server"`
	Cookie    bool                `json:"session_cookie"`
	Reachable bool                `json:"reachable"`
	Error     string              `json:"error,omitempty"`
	Login     *loginstatus.Status `json:"login,omitempty"`
}

func runStatus(ctx context.Context, w io.Writer, serverURL string, hasCookie bool, src loginstatus.Source) error {
	out := statusOutput{Server: serverURL, Cookie: hasCookie}

	st, err := loginstatus.Fetch(ctx, src)
	if err != nil {
		out.Error = err.Error()
	} else {
		out.Reachable = true
		out.Login = st
	}

	if isJSON() {
		return printJSON(w, out)
	}

	fmt.Fprintf(w, "Server:  %s\n", serverURL)
	if hasCookie {
		fmt.Fprintln(w, "Session: configured")
	} else {
		fmt.Fprintln(w, "Session: not configured")
	}

	if err != nil {
		fmt.Fprintf(w, "Status:  ✗ cannot read login status (%v)\n", err)
		return nil
	}

	if st.LoggedIn {
		fmt.Fprintln(w, "Status:  ✓ logged in")
	} else {
		fmt.Fprintln(w, "Status:  ✗ not logged in")
	}
	if st.Message != "" {
		fmt.Fprintf(w, "         %s\n", st.Message)
	}
	for _, d := range st.Details {
		fmt.Fprintf(w, "         %s\n", d)
	}
	if !st.LoggedIn {
		fmt.Fprintln(w, "\nRun 'pf login' to authenticate.")
	}

	return nil
}
