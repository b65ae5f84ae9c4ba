// Package tokenstore persists the raw session token between client runs.
//
// Exactly one token is kept, under common.TokenStorageKey. Storage failures
// on read are logged as warnings and reported as "no token", so a broken
// database never prevents the client from starting in the logged-out state.
package tokenstore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fintrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/logging"
)

// Store is the persistent slot holding the session token.
type Store interface {
	// Read returns the stored token and true, or "" and false when nothing
	// usable is stored or storage is unavailable.
	Read(ctx context.Context) (string, bool)
	Write(ctx context.Context, token string) error
	// Clear removes the token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// SQLiteStore keeps the token in the metadata table.
type SQLiteStore struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewSQLiteStore(repo metadata.Repository, logger logging.Logger) *SQLiteStore {
	return &SQLiteStore{repo: repo, logger: logger}
}

func (s *SQLiteStore) Read(ctx context.Context) (string, bool) {
	v, found, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		s.logger.Warn(ctx, "token storage unavailable, continuing without a session", "error", err)
		return "", false
	}
	if !found || len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *SQLiteStore) Write(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenStorageKey, []byte(token))
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenStorageKey)
}

// MemoryStore is a process-local Store. The client falls back to it when
// the token database cannot be opened.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Read(_ context.Context) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

func (m *MemoryStore) Write(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
