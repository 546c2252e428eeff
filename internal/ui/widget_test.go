package ui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/events"
	"github.com/vancomm/minesweeper/internal/records"
	"github.com/vancomm/minesweeper/internal/ui"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestTimer(t *testing.T) {
	clock := newFakeClock()
	timer := ui.NewTimer(clock.Now)

	clock.Advance(5 * time.Second)
	assert.Equal(t, 0, timer.Seconds(), "idle timer counts nothing")

	timer.Start()
	clock.Advance(3*time.Second + 900*time.Millisecond)
	assert.True(t, timer.Running())
	assert.Equal(t, 3, timer.Seconds())

	timer.Stop()
	clock.Advance(time.Minute)
	assert.False(t, timer.Running())
	assert.Equal(t, 3, timer.Seconds())

	timer.Start()
	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, 4, timer.Seconds(), "resumed timer keeps fractions")
	assert.Equal(t, ui.TimerView{Seconds: 4, Running: true}, timer.View())

	timer.Stop()
	timer.Clean()
	assert.Equal(t, 0, timer.Seconds())
}

func TestTimerStartTwice(t *testing.T) {
	clock := newFakeClock()
	timer := ui.NewTimer(clock.Now)

	timer.Start()
	clock.Advance(2 * time.Second)
	timer.Start()
	clock.Advance(2 * time.Second)

	assert.Equal(t, 4, timer.Seconds())
}

func TestBestResult(t *testing.T) {
	tracker := records.NewTracker()
	best := ui.NewBestResult(tracker)
	best.SetDifficulty("easy")

	assert.Equal(t, ui.BestResultView{Difficulty: "easy"}, best.View())

	assert.True(t, best.UpdateBestResult(42))
	assert.False(t, best.UpdateBestResult(50))
	assert.True(t, best.UpdateBestResult(0))

	view := best.View().(ui.BestResultView)
	require.NotNil(t, view.Seconds)
	assert.Equal(t, 0, *view.Seconds)

	best.SetDifficulty("hard")
	assert.Nil(t, best.View().(ui.BestResultView).Seconds)
}

func TestConfigSelect(t *testing.T) {
	cfg, err := ui.NewConfig(difficulty.Defaults(), "")
	require.NoError(t, err)
	assert.Equal(t, difficulty.Easy, cfg.Selected())

	var changed []any
	cfg.On(events.ConfigChanged, func(data any) { changed = append(changed, data) })

	require.NoError(t, cfg.Select("hard"))
	assert.Equal(t, difficulty.Hard, cfg.Selected())
	assert.Equal(t, []any{"hard"}, changed)

	err = cfg.Select("insane")
	assert.ErrorIs(t, err, difficulty.ErrUnknown)
	assert.Equal(t, difficulty.Hard, cfg.Selected())
	assert.Len(t, changed, 1)

	view := cfg.View().(ui.ConfigView)
	assert.Equal(t, "hard", view.Selected)
	assert.Len(t, view.List, 3)
}

func TestNewConfigUnknown(t *testing.T) {
	_, err := ui.NewConfig(difficulty.Defaults(), "insane")
	assert.ErrorIs(t, err, difficulty.ErrUnknown)
}

func TestAlert(t *testing.T) {
	a := ui.NewAlert()
	assert.True(t, a.Hidden())

	a.Render(ui.AlertDanger, "Game over")
	assert.Equal(t, ui.AlertView{Type: ui.AlertDanger, Text: "Game over"}, a.View())

	a.Hide()
	assert.True(t, a.View().(ui.AlertView).Hidden)
}

func TestNewGameButton(t *testing.T) {
	var b ui.NewGameButton
	pressed := 0
	b.On(events.NewGame, func(any) { pressed++ })

	b.Press()
	b.Press()

	assert.Equal(t, 2, pressed)
}
