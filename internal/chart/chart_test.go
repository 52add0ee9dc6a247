package chart

import (
	"reflect"
	"strings"
	"testing"
)

func TestLikesSortsByCountThenLabel(t *testing.T) {
	rows := Likes(map[string]int64{
		"info":    3,
		"gallery": 7,
		"facts":   3,
		"other":   1,
	})

	want := []Row{
		{"gallery", 7},
		{"facts", 3},
		{"info", 3},
		{"other", 1},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestLikesEmpty(t *testing.T) {
	if rows := Likes(nil); len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want []int
	}{
		{"scaled to max", []Row{{"a", 10}, {"b", 5}, {"c", 0}}, []int{100, 50, 0}},
		{"all zero", []Row{{"a", 0}}, []int{0}},
		{"empty", nil, []int{}},
		{"negative count", []Row{{"a", 5}, {"b", -3}}, []int{100, 0}},
		{"all negative", []Row{{"a", -1}}, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Percent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTableIncludesRows(t *testing.T) {
	out := Table("Likes", []Row{{"gallery", 7}, {"info", 3}})
	for _, want := range []string{"Likes", "gallery", "info", "7", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTableNegativeCount(t *testing.T) {
	out := Table("Likes", Likes(map[string]int64{"a": 5, "b": -3}))
	for _, want := range []string{"a", "b", "-3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTableEmpty(t *testing.T) {
	if out := Table("Likes", nil); !strings.Contains(out, "(no data)") {
		t.Errorf("expected placeholder row:\n%s", out)
	}
}

func TestActivitiesNotEmpty(t *testing.T) {
	if len(Activities()) == 0 {
		t.Fatal("expected activities")
	}
}
