// Package server initializes and runs the directory API server: it opens the
// record store, seeds it when empty, and serves the HTTP endpoints until an
// OS signal asks it to stop.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fabienvalero1/userdir/internal/logging"
	"github.com/fabienvalero1/userdir/internal/server/config"
	"github.com/fabienvalero1/userdir/internal/server/db"
	"github.com/fabienvalero1/userdir/internal/server/httpserver"
	"github.com/fabienvalero1/userdir/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpserver.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	conn, err := db.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	dialect := db.Dialect(c.DatabaseDSN)

	seeded, err := users.Seed(ctx, conn, dialect, c.SeedCount)
	if err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}
	if seeded > 0 {
		logger.Info(ctx, "empty store seeded", "users", seeded)
	}

	service := users.NewService(users.NewRepository(conn, dialect))
	srv := httpserver.NewServer(c.EndpointAddr, &httpserver.Handler{Users: service}, logger)

	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
