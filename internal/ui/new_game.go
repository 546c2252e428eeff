package ui

import "github.com/vancomm/minesweeper/internal/events"

type NewGameButton struct {
	Base
}

func (b *NewGameButton) Press() {
	b.Emit(events.NewGame, nil)
}

type NewGameButtonView struct {
	Hidden bool `json:"hidden"`
}

func (b *NewGameButton) View() any {
	return NewGameButtonView{Hidden: b.Hidden()}
}
