package events

type Event string

const (
	GameStarted   Event = "gameStarted"
	GameOver      Event = "gameOver"
	ConfigChanged Event = "configChanged"
	NewGame       Event = "newGame"
)

// Payload of [GameOver].
type GameOverData struct {
	Won bool `json:"won"`
}

type Handler func(data any)

// Emitter keeps handlers per event and calls them synchronously, in
// registration order. The zero value is ready to use.
type Emitter struct {
	handlers map[Event][]Handler
}

func (e *Emitter) On(event Event, h Handler) {
	if e.handlers == nil {
		e.handlers = make(map[Event][]Handler)
	}
	e.handlers[event] = append(e.handlers[event], h)
}

func (e *Emitter) Off(event Event) {
	delete(e.handlers, event)
}

func (e *Emitter) Emit(event Event, data any) {
	for _, h := range e.handlers[event] {
		h(data)
	}
}
