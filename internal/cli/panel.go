package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/fact"
	"github.com/evcraddock/portfolio/internal/panel"
)

const panelHelp = `Commands:
  <n>      show the latest n comments
  delete   delete all comments and reload
  fact     show a random fact
  help     show this help
  quit     exit`

func newPanelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Interactive comments panel",
		Long:  "Runs an interactive session over the comments panel. Typing a number re-fetches that many comments in the background; newer requests win over older ones still in flight.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newBackendClient()
			if err != nil {
				return err
			}
			return runPanel(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c, getDefaultLimit())
		},
	}
}

// lockedWriter serializes writes from the prompt loop and refresh goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func runPanel(ctx context.Context, in io.Reader, w io.Writer, src panel.Source, limit int) error {
	out := &lockedWriter{w: w}

	var (
		p  *panel.Panel
		wg sync.WaitGroup
	)
	p = panel.New(src, newTermView(out), panel.ReloaderFunc(func(ctx context.Context) error {
		return p.Refresh(ctx, limit)
	}))

	refresh := func(n int) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Refresh(ctx, n); err != nil {
				fmt.Fprintf(out, "✗ could not load comments: %v\n", err)
			}
		}()
	}
	defer wg.Wait()

	fmt.Fprintln(out, panelHelp)
	refresh(limit)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, panelHelp)
		case "fact":
			fmt.Fprintln(out, fact.Random(nil))
		case "delete":
			if err := p.DeleteAll(ctx); err != nil {
				fmt.Fprintf(out, "✗ %v\n", err)
			}
		default:
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				fmt.Fprintf(out, "unknown command %q (type help)\n", line)
				continue
			}
			limit = n
			refresh(n)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
