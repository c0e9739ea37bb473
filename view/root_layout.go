package view

import (
	"github.com/boolean-maybe/tada/controller"
	"github.com/boolean-maybe/tada/model"
	"github.com/boolean-maybe/tada/store"
	"github.com/boolean-maybe/tada/view/header"

	"github.com/rivo/tview"
)

// RootLayout is a container managing the optional header and the content view.
// It observes ListState for header visibility and the store for stats.
type RootLayout struct {
	root    *tview.Flex
	header  *header.HeaderWidget
	content controller.View

	state     *model.ListState
	taskStore store.Store

	stateListenerID   int
	storeListenerID   int
	lastHeaderVisible bool
	syncLabel         string
}

// NewRootLayout creates a root layout around content
func NewRootLayout(
	hdr *header.HeaderWidget,
	content controller.View,
	state *model.ListState,
	taskStore store.Store,
) *RootLayout {
	rl := &RootLayout{
		root:              tview.NewFlex().SetDirection(tview.FlexRow),
		header:            hdr,
		content:           content,
		state:             state,
		taskStore:         taskStore,
		lastHeaderVisible: state.IsHeaderVisible(),
	}

	rl.stateListenerID = state.AddListener(rl.onStateChange)
	rl.storeListenerID = taskStore.AddListener(rl.UpdateHeader)

	rl.rebuildLayout()
	rl.UpdateHeader()
	return rl
}

// onStateChange rebuilds the layout when header visibility flips
func (rl *RootLayout) onStateChange() {
	visible := rl.state.IsHeaderVisible()
	if visible != rl.lastHeaderVisible {
		rl.lastHeaderVisible = visible
		rl.rebuildLayout()
	}
}

func (rl *RootLayout) rebuildLayout() {
	rl.root.Clear()
	if rl.lastHeaderVisible {
		rl.root.AddItem(rl.header.Primitive(), header.HeaderHeight, 0, false)
	}
	rl.root.AddItem(rl.content.GetPrimitive(), 0, 1, true)
}

// UpdateHeader refreshes stats and key hints
func (rl *RootLayout) UpdateHeader() {
	actions := controller.NewActionRegistry()
	if registry := rl.content.GetActionRegistry(); registry != nil {
		actions.Merge(registry)
	}
	actions.Merge(controller.DefaultGlobalActions())
	stats := rl.taskStore.GetStats()
	if rl.syncLabel != "" {
		stats = append(stats, store.Stat{Name: "Sync", Value: rl.syncLabel, Order: 100})
	}
	rl.header.Update(stats, actions.HeaderHint())
}

// SetSyncLabel shows the persistence state in the header
func (rl *RootLayout) SetSyncLabel(label string) {
	rl.syncLabel = label
	rl.UpdateHeader()
}

// GetPrimitive returns the root primitive
func (rl *RootLayout) GetPrimitive() tview.Primitive {
	return rl.root
}

// GetContentView returns the content view
func (rl *RootLayout) GetContentView() controller.View {
	return rl.content
}

// Cleanup removes all listeners
func (rl *RootLayout) Cleanup() {
	rl.state.RemoveListener(rl.stateListenerID)
	rl.taskStore.RemoveListener(rl.storeListenerID)
	rl.content.Cleanup()
}
