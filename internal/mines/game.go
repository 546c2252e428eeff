package mines

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/events"
)

var Log logrus.FieldLogger = logrus.StandardLogger()

type State uint8

const (
	NotStarted State = iota
	InProgress
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// [State] implements [encoding.TextMarshaler]
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s State) Over() bool {
	return s == Won || s == Lost
}

// Result of a single reveal or chord.
type Result uint8

const (
	Continue Result = iota
	Win
	Loss
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "continue"
	}
}

// Game drives a [Field] through NotStarted -> InProgress -> Won | Lost.
// Mines are laid on the first reveal so that the first opened cell is never
// a mine. Game emits [events.GameStarted] after the first reveal and
// [events.GameOver] when the game ends.
type Game struct {
	events.Emitter

	Field    *Field
	State    State
	Exploded *Point

	showMines bool
	rnd       *rand.Rand
}

func NewGame(params Params, r *rand.Rand) (*Game, error) {
	field, err := NewField(params.Unpack())
	if err != nil {
		return nil, err
	}
	return &Game{Field: field, rnd: r}, nil
}

// NewGameWithField starts a game on a field whose mines are already laid.
func NewGameWithField(field *Field) *Game {
	return &Game{Field: field}
}

func (g *Game) Over() bool {
	return g.State.Over()
}

func (g *Game) MinesLeft() int {
	return g.Field.MineCount - g.Field.FlagCount()
}

func (g *Game) start(first Point) error {
	if !g.Field.Placed() {
		if err := g.Field.PlaceMines(first, g.rnd); err != nil {
			return err
		}
		g.Field.ComputeNumbers()
		Log.WithFields(logrus.Fields{
			"params": g.Field.Seed(),
			"first":  first,
		}).Debug("mines placed")
	}
	g.State = InProgress
	return nil
}

// Reveal opens the cell at (row, col). Off-grid coordinates, revealed or
// flagged cells and finished games are left untouched.
func (g *Game) Reveal(row, col int) Result {
	p := Point{Row: row, Col: col}
	if g.Over() || !g.Field.InBounds(p) {
		return Continue
	}
	c := g.Field.At(p)
	if c.Revealed || c.Flagged {
		return Continue
	}

	started := g.State == NotStarted
	if started {
		if err := g.start(p); err != nil {
			Log.WithError(err).Error("unable to start game")
			return Continue
		}
	}

	res := g.open(p)

	if started {
		g.Emit(events.GameStarted, nil)
	}
	if res != Continue {
		g.Emit(events.GameOver, events.GameOverData{Won: res == Win})
	}
	return res
}

func (g *Game) open(p Point) Result {
	f := g.Field
	c := f.At(p)
	if c.Contents.IsMine() {
		f.reveal(c)
		g.State = Lost
		g.Exploded = &p
		return Loss
	}

	/*
	 * Flood fill from p. A cell is marked revealed as it is queued, so every
	 * cell enters the queue at most once.
	 */
	var queue deque.Deque[int]
	f.reveal(c)
	queue.PushBack(f.index(p))
	for queue.Len() > 0 {
		i := queue.PopFront()
		if f.Cells[i].Contents != Empty {
			continue
		}
		for n := range f.Neighbors(f.point(i)) {
			nc := f.At(n)
			if nc.Revealed || nc.Flagged || nc.Contents.IsMine() {
				continue
			}
			f.reveal(nc)
			queue.PushBack(f.index(n))
		}
	}

	if f.RevealedCount() == f.SafeCount() {
		g.State = Won
		g.ShowMines()
		return Win
	}
	return Continue
}

func (g *Game) ToggleFlag(row, col int) {
	p := Point{Row: row, Col: col}
	if g.Over() || !g.Field.InBounds(p) {
		return
	}
	c := g.Field.At(p)
	if c.Revealed {
		return
	}
	c.Flagged = !c.Flagged
}

// Chord opens every unflagged neighbour of a revealed numbered cell once the
// number of flags around it matches its number. A misplaced flag leaves a
// mine unflagged, so chording can lose the game.
func (g *Game) Chord(row, col int) Result {
	p := Point{Row: row, Col: col}
	if g.State != InProgress || !g.Field.InBounds(p) {
		return Continue
	}
	c := g.Field.At(p)
	if !c.Revealed || c.Contents.Number() == 0 {
		return Continue
	}

	flags := 0
	for n := range g.Field.Neighbors(p) {
		if g.Field.At(n).Flagged {
			flags++
		}
	}
	if flags != c.Contents.Number() {
		return Continue
	}

	for n := range g.Field.Neighbors(p) {
		nc := g.Field.At(n)
		if nc.Revealed || nc.Flagged {
			continue
		}
		if res := g.Reveal(n.Row, n.Col); res != Continue {
			return res
		}
	}
	return Continue
}

// ShowMines switches the player grid to its post-game form. It does not
// change any cell's Revealed flag.
func (g *Game) ShowMines() {
	g.showMines = true
}

func (g *Game) MinesShown() bool {
	return g.showMines
}

// Forfeit ends an unfinished game as lost.
func (g *Game) Forfeit() {
	if g.Over() {
		return
	}
	g.State = Lost
	g.ShowMines()
	g.Emit(events.GameOver, events.GameOverData{Won: false})
}
