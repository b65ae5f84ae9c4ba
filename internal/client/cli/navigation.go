package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fintrack/internal/client/guard"
)

// open resolves path through the route guard and makes the result the
// current view. The returned view may differ from path.
func (a *App) open(path string) (string, error) {
	view, err := guard.Resolve(path, a.session.State())
	if err != nil {
		a.logger.Error(context.Background(), "navigation failed", "path", path, "error", err)
		return "", err
	}
	a.setView(view)
	return view, nil
}

// Go navigates to path and renders whatever view the guard lands on.
func (a *App) Go(ctx context.Context, path string) error {
	view, err := a.open(path)
	if err != nil {
		return err
	}
	return a.render(ctx, view)
}

func (a *App) Dashboard(ctx context.Context) error {
	return a.Go(ctx, guard.ViewHome)
}

func (a *App) Analytics(ctx context.Context) error {
	return a.Go(ctx, guard.ViewAnalytics)
}

func (a *App) render(ctx context.Context, view string) error {
	switch view {
	case guard.ViewHome:
		return a.renderDashboard(ctx)
	case guard.ViewAnalytics:
		return a.renderAnalytics(ctx)
	case guard.ViewLogin:
		printlnFn("You are not logged in. Type 'login' to sign in or 'register' to create an account.")
	case guard.ViewRegister:
		printlnFn("Type 'register' to create an account or 'login' if you already have one.")
	default:
		return fmt.Errorf("no renderer for view %q", view)
	}
	return nil
}
