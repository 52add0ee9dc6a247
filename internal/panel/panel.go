// Package panel implements the comments panel: it pulls a bounded list of
// comments from the backend, renders one block per comment and toggles the
// delete action depending on whether anything was rendered.
//
// The panel owns no page state itself. The comment source, the rendering
// target and the page reload are injected, so the same panel drives the
// terminal session and the HTML page server.
package panel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/metrics"
)

// ErrInvalidLimit is returned by Refresh for a negative limit.
var ErrInvalidLimit = errors.New("limit must be zero or greater")

// Source reads and deletes comments on the backend.
type Source interface {
	ListComments(ctx context.Context, limit int) ([]*comment.Comment, error)
	DeleteAll(ctx context.Context) error
}

// Renderer is the rendered comment list and its delete control.
type Renderer interface {
	Clear()
	Append(b comment.Block)
	SetDeleteEnabled(enabled bool)
}

// Reloader discards the page state and loads the page again.
type Reloader interface {
	Reload(ctx context.Context) error
}

// ReloaderFunc adapts a function to the Reloader interface.
type ReloaderFunc func(ctx context.Context) error

// Reload calls f(ctx).
func (f ReloaderFunc) Reload(ctx context.Context) error {
	return f(ctx)
}

// Panel keeps a Renderer in sync with the backend's comment list.
type Panel struct {
	source Source
	view   Renderer
	reload Reloader

	// seq is the number of the latest issued refresh. Only a response
	// carrying that number may touch the view.
	seq atomic.Uint64
	mu  sync.Mutex
}

// New creates a panel. reload may be nil, in which case DeleteAll only
// deletes.
func New(source Source, view Renderer, reload Reloader) *Panel {
	return &Panel{
		source: source,
		view:   view,
		reload: reload,
	}
}

// Refresh fetches up to limit comments and re-renders the list.
//
// Refreshes may overlap. A response is applied only if no newer refresh (or
// delete) was issued while it was in flight; older responses are dropped and
// Refresh returns nil for them. On failure the view is left as it was.
func (p *Panel) Refresh(ctx context.Context, limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	seq := p.seq.Add(1)

	comments, err := p.source.ListComments(ctx, limit)
	if err != nil {
		metrics.PanelRefreshes.WithLabelValues("error").Inc()
		slog.Warn("refreshing comments", "limit", limit, "err", err)
		return fmt.Errorf("fetching comments: %w", err)
	}

	blocks := make([]comment.Block, 0, len(comments))
	for _, c := range comments {
		blocks = append(blocks, comment.NewBlock(c))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if latest := p.seq.Load(); seq != latest {
		metrics.PanelRefreshes.WithLabelValues("stale").Inc()
		slog.Debug("dropping stale comments response", "seq", seq, "latest", latest)
		return nil
	}

	p.view.Clear()
	for _, b := range blocks {
		p.view.Append(b)
	}
	p.view.SetDeleteEnabled(len(blocks) > 0)

	metrics.PanelRefreshes.WithLabelValues("applied").Inc()
	slog.Debug("comments rendered", "seq", seq, "count", len(blocks))
	return nil
}

// DeleteAll deletes every comment on the backend and, once the backend has
// answered, reloads the page. A failed delete does not reload.
func (p *Panel) DeleteAll(ctx context.Context) error {
	if err := p.source.DeleteAll(ctx); err != nil {
		metrics.PanelDeletes.WithLabelValues("error").Inc()
		slog.Warn("deleting comments", "err", err)
		return fmt.Errorf("deleting comments: %w", err)
	}
	metrics.PanelDeletes.WithLabelValues("ok").Inc()

	// Responses to refreshes issued before the delete describe a list that
	// no longer exists.
	p.seq.Add(1)

	if p.reload == nil {
		return nil
	}
	if err := p.reload.Reload(ctx); err != nil {
		return fmt.Errorf("reloading page: %w", err)
	}
	return nil
}
