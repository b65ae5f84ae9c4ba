package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/server/auth"
	"github.com/dmitrijs2005/fintrack/internal/server/config"
)

// Session is what a successful register or login returns.
type Session struct {
	User        *User
	AccessToken string
}

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            bcrypt.DefaultCost,
	}
}

// Register creates the account and signs the new user in.
func (s *Service) Register(ctx context.Context, username, email, password string) (*Session, error) {
	if username == "" || email == "" || len(password) < 6 {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{UserName: username, Email: email, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.newSession(user)
}

// Login checks the password of the user identified by login (username or
// email). Unknown users and wrong passwords both give common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, login, password string) (*Session, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.newSession(user)
}

func (s *Service) newSession(user *User) (*Session, error) {
	token, err := auth.GenerateToken(auth.Identity{
		UserID:   user.ID,
		Username: user.UserName,
		Email:    user.Email,
	}, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, AccessToken: token}, nil
}
