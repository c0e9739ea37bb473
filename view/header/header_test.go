package header

import (
	"strings"
	"testing"

	"github.com/boolean-maybe/tada/store"
)

func TestRender(t *testing.T) {
	stats := []store.Stat{
		{Name: "Done", Value: "1", Order: 3},
		{Name: "Tasks", Value: "3", Order: 1},
		{Name: "Active", Value: "2", Order: 2},
	}

	got := Render(stats, "redis", "q Quit")
	lines := strings.Split(got, "\n")
	if len(lines) != HeaderHeight {
		t.Fatalf("Render() has %d lines, want %d", len(lines), HeaderHeight)
	}

	tasks := strings.Index(lines[0], "Tasks:")
	active := strings.Index(lines[0], "Active:")
	done := strings.Index(lines[0], "Done:")
	if tasks < 0 || active < tasks || done < active {
		t.Errorf("stats not ordered: %q", lines[0])
	}
	if !strings.Contains(lines[0], "redis") {
		t.Errorf("backend missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "q Quit") {
		t.Errorf("hint missing: %q", lines[1])
	}
}

func TestRender_EscapesHint(t *testing.T) {
	got := Render(nil, "", "[red] Search")
	if strings.Contains(got, "[red] Search") {
		t.Errorf("hint not escaped: %q", got)
	}
}
