// Package commands implements the text protocol spoken over the game
// WebSocket and by the terminal player. A command is one line:
//
//	g          get the current view
//	o ROW COL  open a cell
//	f ROW COL  toggle a flag
//	c ROW COL  chord around a cell
//	n          new game at the current difficulty
//	d NAME     switch difficulty
//	r          resign
package commands

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("invalid number of arguments")
	ErrCoordinates    = errors.New("invalid cell coordinates")
)

// Page is what commands act on. [ui.Page] implements it.
type Page interface {
	Game() *mines.Game
	Reveal(row, col int) mines.Result
	ToggleFlag(row, col int)
	Chord(row, col int) mines.Result
	NewGame()
	SetDifficulty(name string) error
	Forfeit()
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"n": 0,
	"d": 1,
	"r": 0,
}

func parseRowCol(args []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

func cell(p Page, args []string) (row, col int, err error) {
	if row, col, err = parseRowCol(args); err != nil {
		return
	}
	if !p.Game().Field.InBounds(mines.Point{Row: row, Col: col}) {
		err = fmt.Errorf("%w: %d %d", ErrCoordinates, row, col)
	}
	return
}

// Execute runs a single command line against p.
func Execute(p Page, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("%w: %q takes %d", ErrArguments, parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return nil
	case "o", "f", "c":
		row, col, err := cell(p, parts[1:])
		if err != nil {
			return err
		}
		switch parts[0] {
		case "o":
			p.Reveal(row, col)
		case "f":
			p.ToggleFlag(row, col)
		case "c":
			p.Chord(row, col)
		}
		return nil
	case "n":
		p.NewGame()
		return nil
	case "d":
		return p.SetDifficulty(parts[1])
	case "r":
		p.Forfeit()
		return nil
	}
	return ErrUnknownCommand
}

// Lines yields the non-blank lines of a frame.
func Lines(frame string) iter.Seq[string] {
	return func(yield func(string) bool) {
		found := true
		var line string
		for found {
			line, frame, found = strings.Cut(frame, "\n")
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// ExecuteFrame runs every command in a frame and stops at the first error.
// Commands after the end of a game still run; moves on a finished game are
// no-ops but "n" and "d" start a new one.
func ExecuteFrame(p Page, frame string) error {
	for line := range Lines(frame) {
		if err := Execute(p, line); err != nil {
			return err
		}
	}
	return nil
}
