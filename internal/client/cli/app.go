package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/fintrack/internal/client/api"
	"github.com/dmitrijs2005/fintrack/internal/client/config"
	"github.com/dmitrijs2005/fintrack/internal/client/guard"
	"github.com/dmitrijs2005/fintrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fintrack/internal/client/services"
	"github.com/dmitrijs2005/fintrack/internal/client/session"
	"github.com/dmitrijs2005/fintrack/internal/client/storage"
	"github.com/dmitrijs2005/fintrack/internal/client/tokenstore"
	"github.com/dmitrijs2005/fintrack/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	session *session.Manager
	auth    services.AuthService
	finance services.FinanceService
	reader  *bufio.Reader
	out     io.Writer

	mu   sync.Mutex
	view string

	closers []func() error
}

// NewApp wires the local token database, session manager, API client and
// services from c. When the database cannot be opened the session lives in
// memory for this run and the client starts logged out.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		store   tokenstore.Store
		closers []func() error
	)

	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		logger.Warn(ctx, "token storage unavailable, session will not be kept", "path", c.StoragePath, "error", err)
		store = tokenstore.NewMemoryStore()
	} else {
		store = tokenstore.NewSQLiteStore(metadata.NewSQLiteRepository(db), logger)
		closers = append(closers, db.Close)
	}

	sessOpts := []session.Option{session.WithLogger(logger)}
	if c.ExpiryCheck {
		sessOpts = append(sessOpts, session.WithExpiryCheck(nil))
	}
	mgr := session.NewManager(store, session.NewDecoder(), sessOpts...)

	apiOpts := []api.Option{api.WithTimeout(c.RequestTimeout), api.WithLogger(logger)}
	if c.AutoLogoutOnUnauthorized {
		apiOpts = append(apiOpts, api.WithUnauthorizedHandler(mgr.Invalidate))
	}
	client := api.NewClient(c.ServerBaseURL, mgr, apiOpts...)

	a := newApp(c, logger, mgr,
		services.NewAuthService(client, mgr, logger),
		services.NewFinanceService(client, logger),
		os.Stdin, os.Stdout)
	a.closers = closers
	return a, nil
}

func newApp(c *config.Config, l logging.Logger, m *session.Manager, as services.AuthService,
	fs services.FinanceService, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		logger:  l,
		session: m,
		auth:    as,
		finance: fs,
		reader:  bufio.NewReader(in),
		out:     out,
		view:    guard.ViewLogin,
	}
}

// Run restores the previous session, opens the start view and serves
// commands until the input ends or the user quits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	unsubscribe := a.session.Subscribe(a.onSessionEvent)
	defer unsubscribe()

	a.session.Initialize(ctx)

	printlnFn("Welcome to fintrack (type 'help' for commands)")
	_ = a.Go(ctx, guard.ViewHome)

	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the local database.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated()
}

func (a *App) currentView() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

func (a *App) setView(v string) {
	a.mu.Lock()
	a.view = v
	a.mu.Unlock()
}

func (a *App) status() string {
	st := a.session.State()
	if st.Authenticated() {
		return fmt.Sprintf("(%s) %s", st.Claims.DisplayName(), a.currentView())
	}
	return a.currentView()
}

// onSessionEvent moves the shell to the login view whenever the session
// ends, whatever ended it.
func (a *App) onSessionEvent(ev session.Event) {
	switch ev.Reason {
	case session.ReasonUnauthorized:
		printlnFn("Your session is no longer valid. Please log in again.")
		a.setView(guard.ViewLogin)
	case session.ReasonExpired:
		printlnFn("Your session has expired. Please log in again.")
		a.setView(guard.ViewLogin)
	case session.ReasonLogout, session.ReasonDecodeFailed:
		a.setView(guard.ViewLogin)
	}
}
