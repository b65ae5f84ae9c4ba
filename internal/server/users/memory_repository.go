package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fintrack/internal/common"
)

// MemoryRepository keeps users in process memory. Usernames and emails are
// matched case-insensitively.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byLogin map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    map[string]*User{},
		byLogin: map[string]string{},
	}
}

func loginKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := []string{loginKey(user.UserName)}
	if user.Email != "" {
		keys = append(keys, loginKey(user.Email))
	}
	for _, k := range keys {
		if _, taken := r.byLogin[k]; taken {
			return nil, ErrUserExists
		}
	}

	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	r.byID[u.ID] = &u
	for _, k := range keys {
		r.byLogin[k] = u.ID
	}

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetUserByLogin(_ context.Context, login string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byLogin[loginKey(login)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.byID[id]
	return &u, nil
}
