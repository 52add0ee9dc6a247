package comment

import (
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name     string
		comment  Comment
		expected string
	}{
		{
			"text only",
			Comment{Author: "Dana", Rate: 5, Text: "Great site"},
			"Author: Dana: Rate: 5. Comment: Great site",
		},
		{
			"liked only",
			Comment{Author: "Omer", Rate: 3, LikedOptions: []string{"tea", "sun"}},
			"Author: Omer: Rate: 3. Liked: tea,sun. ",
		},
		{
			"liked and text",
			Comment{Author: "Noa", Rate: 4, LikedOptions: []string{"The facts"}, Text: "hi"},
			"Author: Noa: Rate: 4. Liked: The facts. Comment: hi",
		},
		{
			"bare",
			Comment{Author: "x@example.com", Rate: 1},
			"Author: x@example.com: Rate: 1. ",
		},
		{
			"fractional rate",
			Comment{Author: "Ari", Rate: 4.5},
			"Author: Ari: Rate: 4.5. ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Line(&tt.comment)
			if result != tt.expected {
				t.Errorf("Line() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestLineOmitsEmptyParts(t *testing.T) {
	line := Line(&Comment{Author: "Dana", Rate: 2, LikedOptions: []string{}})
	if strings.Contains(line, "Liked:") {
		t.Errorf("line %q should not contain Liked:", line)
	}
	if strings.Contains(line, "Comment:") {
		t.Errorf("line %q should not contain Comment:", line)
	}
}

func TestNewBlockUsesDefaultStyle(t *testing.T) {
	b := NewBlock(&Comment{Author: "Dana", Rate: 5})
	if b.Style != DefaultStyle {
		t.Errorf("style = %+v, want %+v", b.Style, DefaultStyle)
	}
	if b.Text != "Author: Dana: Rate: 5. " {
		t.Errorf("text = %q", b.Text)
	}
}
