package controller

import (
	"github.com/rivo/tview"
)

// View and FocusSettable decouple controllers from view implementations.

// View represents a renderable view with its action registry
type View interface {
	// GetPrimitive returns the tview primitive for this view
	GetPrimitive() tview.Primitive

	// GetActionRegistry returns the actions available in this view
	GetActionRegistry() *ActionRegistry

	// OnFocus is called when the view becomes active
	OnFocus()

	// Cleanup releases store and state listeners
	Cleanup()
}

// FocusSettable is implemented by views that move focus between their own
// widgets (search box, list, new task input).
type FocusSettable interface {
	SetFocusSetter(setter func(p tview.Primitive))
}
