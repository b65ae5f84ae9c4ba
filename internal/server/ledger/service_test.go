package ledger

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fintrack/internal/common"
)

func TestService_BalancePerUser(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository())

	_, err := s.AddIncome(ctx, "u1", "salary", 1000, "2026-01-31")
	require.NoError(t, err)
	_, err = s.AddIncome(ctx, "u1", "", 250.5, "")
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, "u1", " rent ", 800)
	require.NoError(t, err)
	_, err = s.AddIncome(ctx, "u2", "gift", 5, "")
	require.NoError(t, err)

	b, err := s.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 450.5, b, 1e-9)

	b, err = s.Balance(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 5.0, b)

	b, err = s.Balance(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, b)

	incomes, err := s.Incomes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, incomes, 2)
	assert.Equal(t, "salary", incomes[0].Source)
	assert.NotEmpty(t, incomes[0].ID)

	expenses, err := s.Expenses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "rent", expenses[0].Category)
}

func TestService_Validation(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository())

	_, err := s.AddExpense(ctx, "u", "  ", 1)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.AddExpense(ctx, "u", "food", math.NaN())
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.AddIncome(ctx, "u", "", math.Inf(1), "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.AddIncome(ctx, &Income{UserID: "u", Amount: 1})
	require.NoError(t, err)

	got, err := r.Incomes(ctx, "u")
	require.NoError(t, err)
	got[0].Amount = 99

	again, err := r.Incomes(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0].Amount)
}
