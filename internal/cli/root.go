// Package cli defines the cobra command tree for pf.
package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/client"
	"github.com/evcraddock/portfolio/internal/logging"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pf",
		Short:         "Browse the portfolio page from the terminal",
		Long:          "A client for the portfolio backend. Read and delete comments, check login status, show charts, facts and pet pictures, or serve the page locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(devMode())
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newCommentsCmd(),
		newDeleteCommentsCmd(),
		newStatusCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newChartCmd(),
		newFactCmd(),
		newPetCmd(),
		newPlacesCmd(),
		newPanelCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// newBackendClient creates an HTTP client for the portfolio backend.
func newBackendClient() (*client.Client, error) {
	serverURL, err := getServerURL()
	if err != nil {
		return nil, err
	}
	return client.New(serverURL, getSessionCookie()), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// devMode reports whether PF_DEV_MODE asks for human-readable debug logs.
func devMode() bool {
	v, _ := strconv.ParseBool(os.Getenv("PF_DEV_MODE"))
	return v
}
