package panel

import (
	"sync"

	"github.com/evcraddock/portfolio/internal/comment"
)

// List is an in-memory Renderer. The page server renders it into HTML after
// a refresh; tests inspect it directly.
type List struct {
	mu            sync.Mutex
	blocks        []comment.Block
	deleteEnabled bool
}

// Clear removes every rendered block.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blocks = nil
}

// Append adds a block at the end of the list.
func (l *List) Append(b comment.Block) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blocks = append(l.blocks, b)
}

// SetDeleteEnabled records the state of the delete control.
func (l *List) SetDeleteEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deleteEnabled = enabled
}

// Blocks returns a copy of the rendered blocks in render order.
func (l *List) Blocks() []comment.Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]comment.Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// DeleteEnabled reports whether the delete control is enabled.
func (l *List) DeleteEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deleteEnabled
}
