// Package services contains the client's application services: the form
// flows behind the login, register and dashboard views. They validate
// input, call the finance API and translate failures into the messages
// shown to the user.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/fintrack/internal/client/api"
	"github.com/dmitrijs2005/fintrack/internal/client/models"
	"github.com/dmitrijs2005/fintrack/internal/logging"
)

const (
	MsgNoResponse         = "No response from server. Please try again later."
	MsgLoginFailed        = "Login failed. Please try again."
	MsgRegistrationFailed = "Registration failed. Please try again."
	MsgLoginTokenMissing  = "Login failed: Token not found"
)

// Failure is an operation that reached (or tried to reach) the server and
// failed. Message is what the user should see.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

// Session is the part of the session manager the services drive.
type Session interface {
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context)
}

// AuthAPI is the subset of the finance API used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, c models.Credentials) (string, error)
	Register(ctx context.Context, r models.Registration) (string, error)
}

// AuthService defines the authentication flows of the client.
//
// Login and Register validate the form, post it, and hand the returned token
// to the session. Logout clears the session unconditionally.
type AuthService interface {
	Login(ctx context.Context, f LoginForm) error
	Register(ctx context.Context, f RegisterForm) error
	Logout(ctx context.Context)
}

type authService struct {
	api     AuthAPI
	session Session
	logger  logging.Logger
}

func NewAuthService(a AuthAPI, s Session, l logging.Logger) AuthService {
	if l == nil {
		l = logging.Discard()
	}
	return &authService{api: a, session: s, logger: l}
}

func (a *authService) Login(ctx context.Context, f LoginForm) error {
	if err := f.Validate(); err != nil {
		return err
	}

	token, err := a.api.Login(ctx, models.Credentials{Username: f.Username, Password: f.Password})
	if err != nil {
		a.logger.Info(ctx, "login failed", "username", f.Username, "error", err)
		if errors.Is(err, api.ErrTokenMissing) {
			return &Failure{Message: MsgLoginTokenMissing, Err: err}
		}
		return &Failure{Message: failureMessage(err, MsgLoginFailed), Err: err}
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		a.logger.Warn(ctx, "server issued an unreadable token", "error", err)
		return &Failure{Message: MsgLoginFailed, Err: err}
	}
	return nil
}

func (a *authService) Register(ctx context.Context, f RegisterForm) error {
	if err := f.Validate(); err != nil {
		return err
	}

	token, err := a.api.Register(ctx, models.Registration{Username: f.Username, Email: f.Email, Password: f.Password})
	if err != nil {
		a.logger.Info(ctx, "registration failed", "username", f.Username, "error", err)
		return &Failure{Message: failureMessage(err, MsgRegistrationFailed), Err: err}
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		a.logger.Warn(ctx, "server issued an unreadable token", "error", err)
		return &Failure{Message: MsgRegistrationFailed, Err: err}
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Clear(ctx)
}

// failureMessage prefers the server's own message, then the transport
// message, then fallback.
func failureMessage(err error, fallback string) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	if errors.Is(err, api.ErrUnavailable) {
		return MsgNoResponse
	}
	return fallback
}
