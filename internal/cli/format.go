package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/places"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// termView renders the comments panel to a terminal. A render is buffered
// from Clear until SetDeleteEnabled, then written as one box per comment.
type termView struct {
	mu      sync.Mutex
	w       io.Writer
	pending []comment.Block
}

func newTermView(w io.Writer) *termView {
	return &termView{w: w}
}

func (v *termView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = v.pending[:0]
}

func (v *termView) Append(b comment.Block) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = append(v.pending, b)
}

func (v *termView) SetDeleteEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.pending) == 0 {
		fmt.Fprintln(v.w, "No comments.")
	} else {
		fmt.Fprintln(v.w, renderBlocks(v.pending))
	}

	if enabled {
		fmt.Fprintln(v.w, "Delete: available (pf delete-comments)")
	} else {
		fmt.Fprintln(v.w, "Delete: disabled")
	}
}

// renderBlocks draws each block as its own bordered, centered row.
func renderBlocks(blocks []comment.Block) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = true
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: alignment(blocks[0].Style.Align), WidthMax: 72},
	})
	for _, b := range blocks {
		tw.AppendRow(table.Row{b.Text})
	}
	return tw.Render()
}

func alignment(align string) text.Align {
	switch align {
	case "left":
		return text.AlignLeft
	case "right":
		return text.AlignRight
	default:
		return text.AlignCenter
	}
}

// printMarkers prints map markers as a table.
func printMarkers(w io.Writer, markers []places.Marker) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("Places (centered on %s)", places.Center.Title))
	tw.AppendHeader(table.Row{"Place", "Lat", "Lng", "About"})
	for _, m := range markers {
		tw.AppendRow(table.Row{m.Title, formatCoord(m.Lat), formatCoord(m.Lng), truncate(m.Description, 50)})
	}
	fmt.Fprintln(w, tw.Render())
}

func formatCoord(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", f), "0"), ".")
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
