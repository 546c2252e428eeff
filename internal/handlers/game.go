package handlers

import (
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/ui"
)

type GameHandler struct {
	log     logrus.FieldLogger
	store   *session.Store
	presets difficulty.Presets
	ws      *config.WebSocket

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGameHandler(
	log logrus.FieldLogger,
	store *session.Store,
	presets difficulty.Presets,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:     log,
		store:   store,
		presets: presets,
		ws:      ws,
		rnd:     rnd,
	}
}

// pageRand gives every page its own source, seeded from the handler's.
func (g *GameHandler) pageRand() *rand.Rand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return rand.New(rand.NewPCG(g.rnd.Uint64(), g.rnd.Uint64()))
}

func (g *GameHandler) Difficulties(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.log, g.presets)
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := decode[NewGameDTO](r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	page, err := ui.NewPage(ui.PageOptions{
		Presets:    g.presets,
		Difficulty: dto.Difficulty,
		Rand:       g.pageRand(),
		Logger:     g.log,
	})
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	sess := g.store.Create(page)
	g.log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"difficulty": page.Difficulty().Name,
	}).Debug("created session")

	g.sendView(w, sess)
}

// do runs fn on the session named in the path and replies with the page view.
func (g *GameHandler) do(w http.ResponseWriter, r *http.Request, fn func(p *ui.Page) error) {
	sess, err := g.store.Get(r.PathValue("id"))
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusNotFound, err)
		return
	}

	var dto SessionDTO
	err = sess.Do(func(p *ui.Page) error {
		if err := fn(p); err != nil {
			return err
		}
		dto = SessionDTO{SessionID: sess.ID, PageView: p.View()}
		return nil
	})
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	sendJSONOrLog(w, g.log, dto)
}

func (g *GameHandler) sendView(w http.ResponseWriter, sess *session.Session) {
	var dto SessionDTO
	sess.Do(func(p *ui.Page) error {
		dto = SessionDTO{SessionID: sess.ID, PageView: p.View()}
		return nil
	})
	sendJSONOrLog(w, g.log, dto)
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	g.do(w, r, func(*ui.Page) error { return nil })
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	dto, err := decode[MoveDTO](r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	line, err := dto.Line()
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	g.do(w, r, func(p *ui.Page) error {
		return commands.Execute(p, line)
	})
}

func (g *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	g.do(w, r, func(p *ui.Page) error {
		p.NewGame()
		return nil
	})
}

func (g *GameHandler) SetDifficulty(w http.ResponseWriter, r *http.Request) {
	dto, err := decode[DifficultyDTO](r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	g.do(w, r, func(p *ui.Page) error {
		return p.SetDifficulty(dto.Name)
	})
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	g.do(w, r, func(p *ui.Page) error {
		p.Forfeit()
		return nil
	})
}

func (g *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	g.store.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	sess, err := g.store.Get(r.PathValue("id"))
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusNotFound, err)
		return
	}

	log := g.log.WithField("session_id", sess.ID)

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	// Deleting or expiring the session ends the connection.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-sess.Done():
			log.Debug("session closed, dropping connection")
			c.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"),
				time.Now().Add(time.Second),
			)
			c.Close()
		case <-stop:
		}
	}()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("unable to read message")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		var reply any
		err = sess.Do(func(p *ui.Page) error {
			if err := commands.ExecuteFrame(p, string(message)); err != nil {
				return err
			}
			reply = SessionDTO{SessionID: sess.ID, PageView: p.View()}
			return nil
		})
		if err != nil {
			log.WithError(err).Debug("command rejected")
			reply = wrapError(err)
		}

		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Error("unable to write message")
			break
		}
	}
}
