package tasklist

import (
	"reflect"
	"testing"

	"github.com/boolean-maybe/tada/store"
)

func TestSearch(t *testing.T) {
	s := newTestStore(t, store.NewMemoryKV())
	s.Create("Abstract")
	s.Create("table")
	s.Create("xyz")

	tests := []struct {
		name  string
		query string
		want  []string // newest first
	}{
		{name: "case-insensitive substring", query: "ab", want: []string{"table", "Abstract"}},
		{name: "mixed case query", query: "aB", want: []string{"table", "Abstract"}},
		{name: "no match", query: "zzz", want: []string{}},
		{name: "untrimmed query", query: "xyz ", want: []string{}},
		{name: "empty restores all", query: "", want: []string{"xyz", "table", "Abstract"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Search(tt.query)
			if got := titles(s.VisibleView()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) view = %v, want %v", tt.query, got, tt.want)
			}
			if s.Query() != tt.query {
				t.Errorf("Query() = %q, want %q", s.Query(), tt.query)
			}
		})
	}
}

func TestSearch_InsertionOrderOfMatches(t *testing.T) {
	s := newTestStore(t, store.NewMemoryKV())
	s.Create("Abstract")
	s.Create("table")
	s.Create("xyz")

	s.Search("ab")
	view := s.VisibleView()

	// the view is shown newest first; reversing it yields reference order
	var inOrder []string
	for i := len(view) - 1; i >= 0; i-- {
		inOrder = append(inOrder, view[i].Title)
	}
	if !reflect.DeepEqual(inOrder, []string{"Abstract", "table"}) {
		t.Errorf("matches in reference order = %v, want [Abstract table]", inOrder)
	}
}

func TestSearch_Reversible(t *testing.T) {
	kv := store.NewMemoryKV()
	s := newTestStore(t, kv)
	a := s.Create("alpha")
	s.Create("beta")
	s.Create("gamma")
	s.ToggleDone(a.ID)
	flush(t, s)

	before := s.VisibleView()
	writes := kv.Writes()

	s.Search("et")
	s.Search("et")
	s.Search("")

	if got := s.VisibleView(); !reflect.DeepEqual(got, before) {
		t.Errorf("view after clearing search = %#v, want %#v", got, before)
	}
	flush(t, s)
	if kv.Writes() != writes {
		t.Errorf("search issued %d writes, want none", kv.Writes()-writes)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	s := newTestStore(t, store.NewMemoryKV())
	s.Create("one")
	s.Create("two")
	s.Create("three")

	s.Search("t")
	first := s.VisibleView()
	s.Search("t")
	if got := s.VisibleView(); !reflect.DeepEqual(got, first) {
		t.Errorf("repeated search = %v, want %v", titles(got), titles(first))
	}
}

func TestSearch_FilterFollowsMutations(t *testing.T) {
	s := newTestStore(t, store.NewMemoryKV())
	s.Create("milk")
	s.Search("mil")

	s.Create("bread")
	s.Create("Milkshake")
	if got := titles(s.VisibleView()); !reflect.DeepEqual(got, []string{"Milkshake", "milk"}) {
		t.Errorf("VisibleView() = %v, want matching tasks only", got)
	}

	s.Search("")
	if got := titles(s.VisibleView()); !reflect.DeepEqual(got, []string{"Milkshake", "bread", "milk"}) {
		t.Errorf("VisibleView() = %v after clearing search", got)
	}
}
