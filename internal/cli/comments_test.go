package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/panel"
)

func TestRunComments(t *testing.T) {
	b := &fakeBackend{comments: []*comment.Comment{
		{Author: "Dana", Rate: 5, LikedOptions: []string{"facts", "gallery"}, Text: "Great site"},
		{Author: "Eli", Rate: 4.5},
	}}

	var buf bytes.Buffer
	if err := runComments(context.Background(), &buf, b, 10); err != nil {
		t.Fatalf("comments: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Author: Dana: Rate: 5. Liked: facts,gallery. Comment: Great site") {
		t.Errorf("output missing Dana:\n%s", out)
	}
	if !strings.Contains(out, "Author: Eli: Rate: 4.5.") {
		t.Errorf("output missing Eli:\n%s", out)
	}
	if !strings.Contains(out, "Delete: available") {
		t.Error("expected delete available")
	}
}

func TestRunCommentsLimit(t *testing.T) {
	b := &fakeBackend{comments: []*comment.Comment{{Author: "Dana", Rate: 5}, {Author: "Eli", Rate: 3}}}

	var buf bytes.Buffer
	if err := runComments(context.Background(), &buf, b, 1); err != nil {
		t.Fatalf("comments: %v", err)
	}
	if strings.Contains(buf.String(), "Eli") {
		t.Error("limit should bound the list")
	}
}

func TestRunCommentsNegativeLimit(t *testing.T) {
	var buf bytes.Buffer
	err := runComments(context.Background(), &buf, &fakeBackend{}, -1)
	if !errors.Is(err, panel.ErrInvalidLimit) {
		t.Fatalf("err = %v, want ErrInvalidLimit", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be rendered, got %q", buf.String())
	}
}

func TestRunCommentsError(t *testing.T) {
	var buf bytes.Buffer
	b := &fakeBackend{listErr: errors.New("connection refused")}

	if err := runComments(context.Background(), &buf, b, 10); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be rendered, got %q", buf.String())
	}
}

func TestRunCommentsJSON(t *testing.T) {
	flagFormat = "json"
	t.Cleanup(func() { flagFormat = "text" })

	var buf bytes.Buffer
	if err := runComments(context.Background(), &buf, &fakeBackend{}, 10); err != nil {
		t.Fatalf("comments: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"comments": []`) {
		t.Errorf("output = %q, want empty comments array", out)
	}
	if !strings.Contains(out, `"delete_enabled": false`) {
		t.Errorf("output = %q, want delete disabled", out)
	}
}

func TestRunDeleteComments(t *testing.T) {
	b := &fakeBackend{comments: []*comment.Comment{{Author: "Dana", Rate: 5}}}

	var buf bytes.Buffer
	if err := runDeleteComments(context.Background(), &buf, b, 10); err != nil {
		t.Fatalf("delete: %v", err)
	}

	out := buf.String()
	if b.deleteCalls != 1 {
		t.Errorf("delete calls = %d, want 1", b.deleteCalls)
	}
	deleted := strings.Index(out, "Comments deleted")
	if deleted < 0 {
		t.Fatalf("output = %q, want confirmation", out)
	}
	if !strings.Contains(out[deleted:], "No comments.") {
		t.Errorf("expected reloaded empty list after delete:\n%s", out)
	}
}

func TestRunDeleteCommentsFailureDoesNotReload(t *testing.T) {
	b := &fakeBackend{deleteErr: errors.New("boom")}

	var buf bytes.Buffer
	if err := runDeleteComments(context.Background(), &buf, b, 10); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("failed delete should not reload, got %q", buf.String())
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		got, err := confirm(strings.NewReader(tt.input), &buf, "? ")
		if err != nil {
			t.Fatalf("confirm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRunChart(t *testing.T) {
	b := &fakeBackend{likes: map[string]int64{"facts": 3, "gallery": 5}}

	var buf bytes.Buffer
	if err := runChart(context.Background(), &buf, b); err != nil {
		t.Fatalf("chart: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Coding") {
		t.Error("expected activities chart")
	}
	if strings.Index(out, "gallery") > strings.Index(out, "facts") {
		t.Error("likes should be sorted by count")
	}
}

func TestRunChartError(t *testing.T) {
	b := &fakeBackend{chartErr: errors.New("boom")}

	var buf bytes.Buffer
	if err := runChart(context.Background(), &buf, b); err == nil {
		t.Fatal("expected error")
	}
}
