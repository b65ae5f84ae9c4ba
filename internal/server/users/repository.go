package users

import (
	"context"
	"errors"
)

// ErrUserExists is returned by Create when the username or email is taken.
var ErrUserExists = errors.New("user already exists")

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	// GetUserByLogin finds a user by username or email. Missing users
	// yield common.ErrorNotFound.
	GetUserByLogin(ctx context.Context, login string) (*User, error)
}
