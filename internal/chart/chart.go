// Package chart prepares the data behind the page's two charts: how often
// each item was liked in comments, and a fixed breakdown of activities.
package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Row is one labeled value of a chart.
type Row struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// barWidth is the terminal width of the longest bar.
const barWidth = 30

// Likes turns the backend's item -> count map into rows, most liked first.
// Ties are ordered by label.
func Likes(counts map[string]int64) []Row {
	rows := make([]Row, 0, len(counts))
	for label, n := range counts {
		rows = append(rows, Row{Label: label, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// Activities returns hours per week spent on each activity.
func Activities() []Row {
	return []Row{
		{Label: "Coding", Count: 20},
		{Label: "Playing with the cats", Count: 7},
		{Label: "Learning Arabic", Count: 5},
		{Label: "Ballet", Count: 3},
	}
}

// Percent returns each row's share of the largest count, 0-100. Negative
// counts get no bar.
func Percent(rows []Row) []int {
	var max int64
	for _, r := range rows {
		if r.Count > max {
			max = r.Count
		}
	}
	out := make([]int, len(rows))
	if max == 0 {
		return out
	}
	for i, r := range rows {
		if r.Count > 0 {
			out[i] = int(r.Count * 100 / max)
		}
	}
	return out
}

// Table renders rows as a titled terminal table with a bar per row.
func Table(title string, rows []Row) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Item", "Count", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	if len(rows) == 0 {
		tw.AppendRow(table.Row{"(no data)", "", ""})
		return tw.Render()
	}

	for i, pct := range Percent(rows) {
		bar := strings.Repeat("█", pct*barWidth/100)
		tw.AppendRow(table.Row{rows[i].Label, fmt.Sprintf("%d", rows[i].Count), text.FgCyan.Sprint(bar)})
	}
	return tw.Render()
}
