// Package ui holds the page widgets and the [Page] controller that wires them
// to a minesweeper game. Widgets do not render anything themselves: View
// returns the model the browser renders.
package ui

import "github.com/vancomm/minesweeper/internal/events"

type Widget interface {
	Show()
	Hide()
	Hidden() bool
	On(event events.Event, h events.Handler)
	Emit(event events.Event, data any)
	View() any
}

// Base gives a widget visibility and an event emitter.
type Base struct {
	events.Emitter
	hidden bool
}

func (b *Base) Show() {
	b.hidden = false
}

func (b *Base) Hide() {
	b.hidden = true
}

func (b *Base) Hidden() bool {
	return b.hidden
}
