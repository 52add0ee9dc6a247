// Package comment provides the comment model served by the portfolio backend
// and the display line the comments panel renders for it.
package comment

// Comment is a single visitor entry as returned by GET /data.
// The client never mutates or stores comments.
type Comment struct {
	Author       string   `json:"author"`
	Rate         float64  `json:"rate"`
	LikedOptions []string `json:"likedOptions"`
	Text         string   `json:"text"`
}

// Style is the fixed presentation applied to every rendered comment block.
type Style struct {
	Border string `json:"border"`
	Width  string `json:"width"`
	Align  string `json:"align"`
}

// DefaultStyle is the border/width/centering convention of the comments container.
var DefaultStyle = Style{
	Border: "1px solid black",
	Width:  "60%",
	Align:  "center",
}

// Block is one rendered comment line.
type Block struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// NewBlock renders c into a block with the default style.
func NewBlock(c *Comment) Block {
	return Block{Text: Line(c), Style: DefaultStyle}
}
