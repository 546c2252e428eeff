package app

import (
	"net/http"

	"github.com/vancomm/minesweeper/internal/handlers"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.store, a.presets, a.ws, mines.NewRand(a.config.Seed),
	)

	a.router.HandleFunc("GET /status", handlers.Status)
	a.router.HandleFunc("GET /difficulties", game.Difficulties)
	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE /game/{id}", game.Delete)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST /game/{id}/new", game.Restart)
	a.router.HandleFunc("POST /game/{id}/difficulty", game.SetDifficulty)
	a.router.HandleFunc("POST /game/{id}/forfeit", game.Forfeit)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)

	if a.config.StaticDir != "" {
		a.router.Handle("GET /", middleware.NoCache(http.FileServer(http.Dir(a.config.StaticDir))))
	}
}
