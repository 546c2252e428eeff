package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/session"
)

type App struct {
	log     logrus.FieldLogger
	config  *config.Config
	router  *http.ServeMux
	store   *session.Store
	presets difficulty.Presets
	ws      *config.WebSocket
}

func New(log logrus.FieldLogger, cfg *config.Config, presets difficulty.Presets) *App {
	app := &App{
		log:     log,
		config:  cfg,
		router:  http.NewServeMux(),
		store:   session.NewStore(cfg.SessionTTL, session.WithLogger(log)),
		presets: presets,
		ws:      config.NewWebSocket(cfg.Development()),
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	mws := []middleware.Middleware{middleware.Logging(a.log)}
	if a.config.Development() {
		mws = append(mws, middleware.Cors())
	}
	return middleware.Wrap(a.router, mws...)
}

// Start serves until ctx is done and then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", a.config.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return a.store.Run(gCtx, a.config.SweepInterval)
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(ctx)
	})

	return g.Wait()
}
