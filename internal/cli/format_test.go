package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/places"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world!", 8, "hello..."},
		{"multibyte", "ירושלים של זהב", 8, "ירושל..."},
		{"multibyte short", "חיפה", 4, "חיפה"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{31.7683, "31.7683"},
		{35.5, "35.5"},
		{32, "32"},
	}

	for _, tt := range tests {
		if got := formatCoord(tt.in); got != tt.want {
			t.Errorf("formatCoord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTermViewRendersBlocks(t *testing.T) {
	var buf bytes.Buffer
	v := newTermView(&buf)

	v.Clear()
	v.Append(comment.NewBlock(&comment.Comment{Author: "Dana", Rate: 5, Text: "Great site"}))
	v.Append(comment.NewBlock(&comment.Comment{Author: "Eli", Rate: 3}))
	v.SetDeleteEnabled(true)

	out := buf.String()
	if !strings.Contains(out, "Author: Dana: Rate: 5. Comment: Great site") {
		t.Errorf("output missing first comment:\n%s", out)
	}
	if !strings.Contains(out, "Author: Eli: Rate: 3.") {
		t.Errorf("output missing second comment:\n%s", out)
	}
	if strings.Index(out, "Dana") > strings.Index(out, "Eli") {
		t.Error("comments out of order")
	}
	if !strings.Contains(out, "Delete: available") {
		t.Error("expected delete to be available")
	}
}

func TestTermViewEmpty(t *testing.T) {
	var buf bytes.Buffer
	v := newTermView(&buf)

	v.Clear()
	v.SetDeleteEnabled(false)

	out := buf.String()
	if !strings.Contains(out, "No comments.") {
		t.Errorf("output = %q, want empty state", out)
	}
	if !strings.Contains(out, "Delete: disabled") {
		t.Errorf("output = %q, want delete disabled", out)
	}
}

func TestTermViewClearDropsPending(t *testing.T) {
	var buf bytes.Buffer
	v := newTermView(&buf)

	v.Append(comment.NewBlock(&comment.Comment{Author: "Old", Rate: 1}))
	v.Clear()
	v.Append(comment.NewBlock(&comment.Comment{Author: "New", Rate: 2}))
	v.SetDeleteEnabled(true)

	if strings.Contains(buf.String(), "Old") {
		t.Error("cleared block should not be rendered")
	}
}

func TestPrintMarkers(t *testing.T) {
	var buf bytes.Buffer
	printMarkers(&buf, places.Markers())

	out := buf.String()
	for _, m := range places.Markers() {
		if !strings.Contains(out, m.Title) {
			t.Errorf("output missing %q", m.Title)
		}
	}
}
