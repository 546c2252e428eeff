package ui

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/events"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/records"
)

// Page owns one game at a time and the widgets around it:
//
//   - gameStarted starts the timer
//   - gameOver stops it, shows the alert and records a winning time
//   - configChanged and newGame replace the game
//
// Page is not safe for concurrent use.
type Page struct {
	log logrus.FieldLogger
	rnd *rand.Rand

	game *mines.Game

	Timer         *Timer
	BestResult    *BestResult
	Config        *Config
	Alert         *Alert
	NewGameButton *NewGameButton
}

type PageOptions struct {
	Presets    difficulty.Presets
	Difficulty string
	Rand       *rand.Rand
	Clock      Clock
	Records    *records.Tracker
	Logger     logrus.FieldLogger
}

type PageView struct {
	Difficulty string      `json:"difficulty"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	MineCount  int         `json:"mine_count"`
	MinesLeft  int         `json:"mines_left"`
	State      mines.State `json:"state"`
	Grid       mines.Grid  `json:"grid"`
	Timer      any         `json:"timer"`
	BestResult any         `json:"best_result"`
	Config     any         `json:"config"`
	Alert      any         `json:"alert"`
}

func NewPage(opts PageOptions) (*Page, error) {
	presets := opts.Presets
	if len(presets) == 0 {
		presets = difficulty.Defaults()
	}
	config, err := NewConfig(presets, opts.Difficulty)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	p := &Page{
		log:           log,
		rnd:           rnd,
		Timer:         NewTimer(opts.Clock),
		BestResult:    NewBestResult(opts.Records),
		Config:        config,
		Alert:         NewAlert(),
		NewGameButton: &NewGameButton{},
	}

	p.Config.On(events.ConfigChanged, func(data any) {
		p.log.WithField("difficulty", data).Debug("difficulty changed")
		p.restart()
	})
	p.NewGameButton.On(events.NewGame, func(any) {
		p.restart()
	})

	if err := p.startGame(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Page) startGame() error {
	preset := p.Config.Selected()
	game, err := mines.NewGame(preset.Params(), p.rnd)
	if err != nil {
		return fmt.Errorf("unable to start %s game: %w", preset.Name, err)
	}

	if p.game != nil {
		p.game.Off(events.GameStarted)
		p.game.Off(events.GameOver)
	}

	p.Timer.Stop()
	p.Timer.Clean()
	p.Alert.Hide()
	p.BestResult.SetDifficulty(preset.Name)

	game.On(events.GameStarted, func(any) { p.Timer.Start() })
	game.On(events.GameOver, func(data any) { p.onGameOver(game, data) })
	p.game = game
	return nil
}

func (p *Page) restart() {
	if err := p.startGame(); err != nil {
		p.log.WithError(err).Error("unable to start a new game")
	}
}

func (p *Page) onGameOver(game *mines.Game, data any) {
	p.Timer.Stop()
	over, _ := data.(events.GameOverData)
	if !over.Won {
		game.ShowMines()
		p.Alert.Render(AlertDanger, "Game over")
		return
	}

	seconds := p.Timer.Seconds()
	p.Alert.Render(AlertSuccess, fmt.Sprintf("You won in %d s!", seconds))
	if p.BestResult.UpdateBestResult(seconds) {
		p.log.WithFields(logrus.Fields{
			"difficulty": p.Config.Selected().Name,
			"seconds":    seconds,
		}).Info("new best result")
	}
}

func (p *Page) Game() *mines.Game {
	return p.game
}

func (p *Page) Difficulty() difficulty.Preset {
	return p.Config.Selected()
}

func (p *Page) SetDifficulty(name string) error {
	return p.Config.Select(name)
}

func (p *Page) NewGame() {
	p.NewGameButton.Press()
}

func (p *Page) Reveal(row, col int) mines.Result {
	return p.game.Reveal(row, col)
}

func (p *Page) ToggleFlag(row, col int) {
	p.game.ToggleFlag(row, col)
}

func (p *Page) Chord(row, col int) mines.Result {
	return p.game.Chord(row, col)
}

func (p *Page) Forfeit() {
	p.game.Forfeit()
}

func (p *Page) View() PageView {
	f := p.game.Field
	return PageView{
		Difficulty: p.Config.Selected().Name,
		Width:      f.Width,
		Height:     f.Height,
		MineCount:  f.MineCount,
		MinesLeft:  p.game.MinesLeft(),
		State:      p.game.State,
		Grid:       p.game.Grid(),
		Timer:      p.Timer.View(),
		BestResult: p.BestResult.View(),
		Config:     p.Config.View(),
		Alert:      p.Alert.View(),
	}
}
