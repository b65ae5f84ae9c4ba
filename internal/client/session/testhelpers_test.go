package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func validToken(t *testing.T) string {
	return signToken(t, jwt.MapClaims{
		"sub":      "42",
		"username": "alice",
		"email":    "alice@example.org",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
}

// flakyStore is a Store whose operations can be made to fail.
type flakyStore struct {
	mu       sync.Mutex
	token    string
	writeErr error
	clearErr error

	writes int
	clears int
}

func (f *flakyStore) Read(context.Context) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.token != ""
}

func (f *flakyStore) Write(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.token = token
	return nil
}

func (f *flakyStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.token = ""
	return nil
}

var errDisk = errors.New("disk full")
