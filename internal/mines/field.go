package mines

import (
	"fmt"
	"iter"
)

type Point struct {
	Row int `json:"row" schema:"row,required"`
	Col int `json:"col" schema:"col,required"`
}

// Contents is what a cell holds: a mine, or the number of mined neighbours
// (0 for an empty cell).
type Contents int8

const (
	Mine  Contents = -1
	Empty Contents = 0
)

func (c Contents) IsMine() bool {
	return c == Mine
}

// Number returns the adjacent mine count, or 0 for a mine.
func (c Contents) Number() int {
	if c < 0 {
		return 0
	}
	return int(c)
}

type Cell struct {
	Contents Contents
	Revealed bool
	Flagged  bool
}

// Field is a row-major grid of cells.
type Field struct {
	Params
	Cells []Cell

	placed   bool
	revealed int
}

var offsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func NewField(width, height, mineCount int) (*Field, error) {
	params := Params{Width: width, Height: height, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Field{
		Params: params,
		Cells:  make([]Cell, width*height),
	}, nil
}

// NewFieldWithMines builds a field with a fixed mine layout, numbers
// included.
func NewFieldWithMines(width, height int, mines ...Point) (*Field, error) {
	f, err := NewField(width, height, len(mines))
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !f.InBounds(p) {
			return nil, ErrInvalidCoordinate
		}
		c := f.At(p)
		if c.Contents.IsMine() {
			return nil, fmt.Errorf("%w: duplicate mine at %d %d", ErrInvalidConfiguration, p.Row, p.Col)
		}
		c.Contents = Mine
	}
	f.placed = true
	f.ComputeNumbers()
	return f, nil
}

func (f *Field) InBounds(p Point) bool {
	return f.PointInBounds(p)
}

func (f *Field) index(p Point) int {
	return p.Row*f.Width + p.Col
}

func (f *Field) point(i int) Point {
	return Point{Row: i / f.Width, Col: i % f.Width}
}

// At returns the cell at p. p must be in bounds.
func (f *Field) At(p Point) *Cell {
	return &f.Cells[f.index(p)]
}

func (f *Field) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range offsets {
			n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if f.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

func (f *Field) Placed() bool {
	return f.placed
}

func (f *Field) RevealedCount() int {
	return f.revealed
}

func (f *Field) SafeCount() int {
	return f.Width*f.Height - f.MineCount
}

func (f *Field) FlagCount() (n int) {
	for i := range f.Cells {
		if f.Cells[i].Flagged {
			n++
		}
	}
	return
}

func (f *Field) CountMines() (n int) {
	for i := range f.Cells {
		if f.Cells[i].Contents.IsMine() {
			n++
		}
	}
	return
}

func (f *Field) reveal(c *Cell) {
	if !c.Revealed {
		c.Revealed = true
		f.revealed++
	}
}
