package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown       CellStatus = -2
	Flag          CellStatus = -1
	CorrectFlag   CellStatus = 64 // post-game-over
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
	// 0-8 for an opened cell with given number of mined neighbours
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "#"
	case Flag, CorrectFlag:
		return "F"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	case ExplodedMine:
		return "X"
	case WrongFlag:
		return "x"
	case UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

// Grid is what the player sees, row-major like [Field.Cells].
type Grid []CellStatus

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func (g *Game) Grid() Grid {
	grid := make(Grid, len(g.Field.Cells))
	for i, c := range g.Field.Cells {
		mine := c.Contents.IsMine()
		switch {
		case c.Revealed && mine:
			grid[i] = ExplodedMine
		case c.Revealed:
			grid[i] = CellStatus(c.Contents)
		case g.showMines && c.Flagged && mine:
			grid[i] = CorrectFlag
		case g.showMines && c.Flagged:
			grid[i] = WrongFlag
		case g.showMines && mine:
			grid[i] = UnflaggedMine
		case c.Flagged:
			grid[i] = Flag
		default:
			grid[i] = Unknown
		}
	}
	return grid
}
