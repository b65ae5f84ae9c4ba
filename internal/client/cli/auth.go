package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fintrack/internal/client/guard"
	"github.com/dmitrijs2005/fintrack/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login shows the login form. An already authenticated user is sent to the
// dashboard instead. On success the dashboard is opened.
func (a *App) Login(ctx context.Context) error {
	view, err := a.open(guard.ViewLogin)
	if err != nil {
		return err
	}
	if view != guard.ViewLogin {
		return a.render(ctx, view)
	}

	username, err := getSimpleText(a.reader, "Username or Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, services.LoginForm{Username: username, Password: string(password)}); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s", a.session.State().Claims.DisplayName()))
	return a.Go(ctx, guard.ViewHome)
}

// Register shows the registration form; see Login for navigation rules.
func (a *App) Register(ctx context.Context) error {
	view, err := a.open(guard.ViewRegister)
	if err != nil {
		return err
	}
	if view != guard.ViewRegister {
		return a.render(ctx, view)
	}

	form := services.RegisterForm{}
	if form.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	form.Password = string(password)

	if err := a.auth.Register(ctx, form); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Registration successful!")
	return a.Go(ctx, guard.ViewHome)
}

// Logout ends the session. The session observer moves the shell to the
// login view.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints what the client knows about the current user from the
// token. The claims are not verified locally.
func (a *App) WhoAmI(context.Context) error {
	st := a.session.State()
	if !st.Authenticated() {
		printlnFn("Not logged in.")
		return nil
	}

	c := st.Claims
	printlnFn("User:", c.DisplayName())
	if c.Email != "" {
		printlnFn("Email:", c.Email)
	}
	if id := c.UserID; id != "" {
		printlnFn("ID:", id)
	} else if c.Subject != "" {
		printlnFn("ID:", c.Subject)
	}
	if !c.ExpiresAt.IsZero() {
		printlnFn("Session expires:", c.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
