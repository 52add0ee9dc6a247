package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/telemetry"
	"github.com/evcraddock/portfolio/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page",
		Long:  "Starts an HTTP server that renders the portfolio page from the backend's data.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 3000, "port to listen on")

	return cmd
}

func runServe(ctx context.Context, port int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Init(ctx, os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"), "pf")
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("shutting down telemetry", "err", err)
		}
	}()

	c, err := newBackendClient()
	if err != nil {
		return err
	}

	srv, err := web.NewServer(c, web.Options{
		DefaultLimit: getDefaultLimit(),
		BackendURL:   c.BaseURL(),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	slog.Info("serving portfolio page", "port", port, "backend", c.BaseURL())
	fmt.Printf("Serving on http://localhost:%d\n", port)
	return srv.ListenAndServe(ctx, port)
}
