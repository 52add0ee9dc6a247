package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/client"
	"github.com/evcraddock/portfolio/internal/loginstatus"
)

func newLoginCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session cookie",
		Long:  "Opens the backend's login page in a browser, then stores the session cookie you paste for later requests.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), server)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "server URL (default: from config or http://localhost:8080)")

	return cmd
}

func runLogin(ctx context.Context, in io.Reader, out io.Writer, serverFlag string) error {
	serverURL := serverFlag
	if serverURL == "" {
		var err error
		if serverURL, err = getServerURL(); err != nil {
			return err
		}
	}

	loginURL := loginPage(ctx, client.New(serverURL, ""))

	fmt.Fprintln(out, "Opening browser for authentication...")
	fmt.Fprintf(out, "If the browser doesn't open, visit: %s\n\n", loginURL)

	if err := openBrowser(loginURL); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
	}

	fmt.Fprint(out, "Paste your session cookie (name=value): ")
	reader := bufio.NewReader(in)
	cookie, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading input: %w", err)
	}

	cookie = strings.TrimSpace(cookie)
	if err := validateSessionCookie(cookie); err != nil {
		return err
	}

	// Load existing config to preserve other fields
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.SessionCookie = cookie
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "✓ Session saved. You're logged in!")
	return nil
}

// loginPage returns the login link the backend advertises, or the backend
// root if it offers none.
func loginPage(ctx context.Context, c *client.Client) string {
	st, err := loginstatus.Fetch(ctx, c)
	if err != nil || st.LoginURL == "" {
		return c.BaseURL()
	}
	if strings.HasPrefix(st.LoginURL, "/") {
		return c.BaseURL() + st.LoginURL
	}
	return st.LoginURL
}

// validateSessionCookie checks that the cookie looks like name=value.
func validateSessionCookie(cookie string) error {
	if cookie == "" {
		return fmt.Errorf("no session cookie provided")
	}
	name, value, ok := strings.Cut(cookie, "=")
	if !ok || strings.TrimSpace(name) == "" || value == "" {
		return fmt.Errorf("invalid session cookie (expected name=value)")
	}
	return nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
