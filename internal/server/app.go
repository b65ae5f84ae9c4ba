// Package server wires the development finance API: configuration,
// in-memory user and ledger stores, the HTTP server and signal handling.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/fintrack/internal/logging"
	"github.com/dmitrijs2005/fintrack/internal/server/config"
	"github.com/dmitrijs2005/fintrack/internal/server/httpapi"
	"github.com/dmitrijs2005/fintrack/internal/server/ledger"
	"github.com/dmitrijs2005/fintrack/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(c *config.Config) *App {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	us := users.NewService(users.NewMemoryRepository(), c)
	ls := ledger.NewService(ledger.NewMemoryRepository())

	return &App{
		config: c,
		logger: logger,
		server: httpapi.NewServer(c, logger, us, ls),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the process receives a termination signal or ctx ends.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	if app.config.SecretKey == "secretKey" {
		app.logger.Warn(ctx, "using the default JWT secret; set FINTRACK_JWT_SECRET outside development")
	}

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
		return err
	}
	return nil
}
