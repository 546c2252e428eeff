package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vancomm/minesweeper/internal/events"
)

func TestEmitCallsHandlersInOrder(t *testing.T) {
	var (
		e     events.Emitter
		calls []string
	)
	e.On(events.GameOver, func(data any) {
		calls = append(calls, "first")
		assert.Equal(t, events.GameOverData{Won: true}, data)
	})
	e.On(events.GameOver, func(any) { calls = append(calls, "second") })
	e.On(events.GameStarted, func(any) { calls = append(calls, "started") })

	e.Emit(events.GameOver, events.GameOverData{Won: true})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestOffRemovesHandlers(t *testing.T) {
	var (
		e     events.Emitter
		count int
	)
	e.On(events.NewGame, func(any) { count++ })
	e.Emit(events.NewGame, nil)
	e.Off(events.NewGame)
	e.Emit(events.NewGame, nil)

	assert.Equal(t, 1, count)
}

func TestEmitWithoutHandlers(t *testing.T) {
	var e events.Emitter
	assert.NotPanics(t, func() { e.Emit(events.ConfigChanged, "easy") })
}
