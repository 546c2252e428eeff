package handlers

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/ui"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type NewGameDTO struct {
	Difficulty string `schema:"difficulty"`
}

type DifficultyDTO struct {
	Name string `schema:"name,required"`
}

type Move uint8

const (
	Open Move = iota + 1
	Flag
	Chord
)

// Command returns the protocol command for the move.
func (m Move) Command() string {
	switch m {
	case Open:
		return "o"
	case Flag:
		return "f"
	case Chord:
		return "c"
	}
	return ""
}

var ErrBadMove = fmt.Errorf("move must be one of 'open', 'flag', 'chord'")

type MoveDTO struct {
	Move string `schema:"move,required"`
	Row  int    `schema:"row,required"`
	Col  int    `schema:"col,required"`
}

func (d MoveDTO) Parse() (Move, error) {
	switch strings.ToLower(d.Move) {
	case "open":
		return Open, nil
	case "flag":
		return Flag, nil
	case "chord":
		return Chord, nil
	}
	return 0, ErrBadMove
}

func (d MoveDTO) Line() (string, error) {
	move, err := d.Parse()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d %d", move.Command(), d.Row, d.Col), nil
}

func decode[T any](src map[string][]string) (T, error) {
	var dto T
	err := decoder.Decode(&dto, src)
	return dto, err
}

type SessionDTO struct {
	SessionID string `json:"session_id"`
	ui.PageView
}
