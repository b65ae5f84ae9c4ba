package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	incomes  map[string][]Income
	expenses map[string][]Expense
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		incomes:  map[string][]Income{},
		expenses: map[string][]Expense{},
	}
}

func (r *MemoryRepository) AddIncome(_ context.Context, in *Income) (*Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := *in
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	r.incomes[rec.UserID] = append(r.incomes[rec.UserID], rec)
	return &rec, nil
}

func (r *MemoryRepository) AddExpense(_ context.Context, e *Expense) (*Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := *e
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	r.expenses[rec.UserID] = append(r.expenses[rec.UserID], rec)
	return &rec, nil
}

func (r *MemoryRepository) Incomes(_ context.Context, userID string) ([]Income, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Income, len(r.incomes[userID]))
	copy(out, r.incomes[userID])
	return out, nil
}

func (r *MemoryRepository) Expenses(_ context.Context, userID string) ([]Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Expense, len(r.expenses[userID]))
	copy(out, r.expenses[userID])
	return out, nil
}
