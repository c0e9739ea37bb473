package task

import (
	"reflect"
	"testing"
)

func titles(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	tasks := []Task{
		{ID: "1", Title: "Abstract"},
		{ID: "2", Title: "table"},
		{ID: "3", Title: "xyz"},
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "case-insensitive substring", query: "ab", expected: []string{"Abstract", "table"}},
		{name: "upper case query", query: "AB", expected: []string{"Abstract", "table"}},
		{name: "empty query matches all", query: "", expected: []string{"Abstract", "table", "xyz"}},
		{name: "no match", query: "nope", expected: []string{}},
		{name: "whitespace is not trimmed", query: " xyz", expected: []string{}},
		{name: "exact title", query: "xyz", expected: []string{"xyz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(tasks, tt.query))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestReversed(t *testing.T) {
	tasks := []Task{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}, {ID: "3", Title: "C"}}
	got := titles(Reversed(tasks))
	want := []string{"C", "B", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reversed() = %v, want %v", got, want)
	}
	if tasks[0].Title != "A" {
		t.Errorf("Reversed() modified its input")
	}
}

func TestIndexOf(t *testing.T) {
	tasks := []Task{{ID: "1"}, {ID: "2"}}
	if got := IndexOf(tasks, "2"); got != 1 {
		t.Errorf("IndexOf(2) = %d, want 1", got)
	}
	if got := IndexOf(tasks, "9"); got != -1 {
		t.Errorf("IndexOf(9) = %d, want -1", got)
	}
}

func TestStatus(t *testing.T) {
	active := Task{ID: "1", Title: "A"}
	if active.Status() != StatusActive {
		t.Errorf("Status() = %s, want %s", active.Status(), StatusActive)
	}
	done := active.Toggled()
	if done.Status() != StatusDone {
		t.Errorf("Toggled().Status() = %s, want %s", done.Status(), StatusDone)
	}
	if active.IsDone {
		t.Errorf("Toggled() modified its receiver")
	}
	if StatusLabel(StatusDone) != "Done" {
		t.Errorf("StatusLabel(done) = %q", StatusLabel(StatusDone))
	}
	if StatusEmoji(StatusActive) == StatusEmoji(StatusDone) {
		t.Errorf("active and done should render differently")
	}
}
