package comment

import (
	"strconv"
	"strings"
)

// Line builds the display line for a comment:
//
//	Author: {author}: Rate: {rate}. [Liked: {a,b}. ][Comment: {text}]
//
// The liked and comment parts are only present when non-empty.
func Line(c *Comment) string {
	var b strings.Builder
	b.WriteString("Author: ")
	b.WriteString(c.Author)
	b.WriteString(": Rate: ")
	b.WriteString(FormatRate(c.Rate))
	b.WriteString(". ")

	if len(c.LikedOptions) > 0 {
		b.WriteString("Liked: ")
		b.WriteString(strings.Join(c.LikedOptions, ","))
		b.WriteString(". ")
	}

	if c.Text != "" {
		b.WriteString("Comment: ")
		b.WriteString(c.Text)
	}

	return b.String()
}

// FormatRate prints a rating the shortest way that round-trips,
// so whole ratings have no decimal point.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
