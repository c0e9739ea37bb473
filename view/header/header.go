package header

import (
	"fmt"
	"sort"
	"strings"

	"github.com/boolean-maybe/tada/store"

	"github.com/rivo/tview"
)

// HeaderHeight is the number of rows the header occupies
const HeaderHeight = 2

// HeaderWidget shows task counters, the storage backend and key hints
type HeaderWidget struct {
	*tview.TextView
	backend string
}

// NewHeaderWidget creates a header for the given storage backend name
func NewHeaderWidget(backend string) *HeaderWidget {
	tv := tview.NewTextView()
	tv.SetDynamicColors(true)
	tv.SetTextAlign(tview.AlignLeft)
	tv.SetWrap(false)

	return &HeaderWidget{TextView: tv, backend: backend}
}

// Primitive returns the underlying tview primitive
func (hw *HeaderWidget) Primitive() tview.Primitive {
	return hw.TextView
}

// Update redraws the header from stats and a key hint line
func (hw *HeaderWidget) Update(stats []store.Stat, hint string) {
	hw.SetText(Render(stats, hw.backend, hint))
}

// Render builds the header text. Stats are ordered by Order.
func Render(stats []store.Stat, backend, hint string) string {
	sorted := make([]store.Stat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	parts := make([]string, 0, len(sorted)+1)
	for _, s := range sorted {
		parts = append(parts, fmt.Sprintf("[yellow]%s:[white] %s", s.Name, s.Value))
	}
	if backend != "" {
		parts = append(parts, fmt.Sprintf("[yellow]Storage:[white] %s", tview.Escape(backend)))
	}

	return " " + strings.Join(parts, "  ") + "\n [gray]" + tview.Escape(hint) + "[-]"
}
