package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
	"github.com/dmitrijs2005/fintrack/internal/common"
)

type fakeFinanceAPI struct {
	incomes  []models.Income
	expenses []models.Expense
	balance  float64

	incomesErr, expensesErr, balanceErr error
	addErr                              error

	addedIncomes  []models.NewIncome
	addedExpenses []models.NewExpense
}

func (f *fakeFinanceAPI) ListIncomes(context.Context) ([]models.Income, error) {
	return f.incomes, f.incomesErr
}

func (f *fakeFinanceAPI) ListExpenses(context.Context) ([]models.Expense, error) {
	return f.expenses, f.expensesErr
}

func (f *fakeFinanceAPI) GetBalance(context.Context) (float64, error) {
	return f.balance, f.balanceErr
}

func (f *fakeFinanceAPI) AddIncome(_ context.Context, in models.NewIncome) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.addedIncomes = append(f.addedIncomes, in)
	return nil
}

func (f *fakeFinanceAPI) AddExpense(_ context.Context, e models.NewExpense) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.addedExpenses = append(f.addedExpenses, e)
	return nil
}

func TestFinanceService_Overview(t *testing.T) {
	f := &fakeFinanceAPI{
		incomes:  []models.Income{{ID: "1", Source: "salary", Amount: 100}},
		expenses: []models.Expense{{ID: "2", Category: "food", Amount: 30}},
		balance:  70,
	}
	ov := NewFinanceService(f, nil).Overview(context.Background())

	if diff := cmp.Diff(f.incomes, ov.Incomes); diff != "" {
		t.Errorf("incomes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(f.expenses, ov.Expenses); diff != "" {
		t.Errorf("expenses (-want +got):\n%s", diff)
	}
	require.NotNil(t, ov.Balance)
	assert.Equal(t, 70.0, *ov.Balance)
	assert.NoError(t, ov.IncomesErr)
	assert.NoError(t, ov.ExpensesErr)
	assert.NoError(t, ov.BalanceErr)
}

func TestFinanceService_Overview_PartialFailure(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeFinanceAPI{
		expenses:   []models.Expense{{Category: "rent", Amount: 500}},
		incomesErr: boom,
		balanceErr: boom,
	}
	ov := NewFinanceService(f, nil).Overview(context.Background())

	assert.ErrorIs(t, ov.IncomesErr, boom)
	assert.ErrorIs(t, ov.BalanceErr, boom)
	assert.Nil(t, ov.Balance)
	assert.Len(t, ov.Expenses, 1)
}

func TestFinanceService_AddIncome(t *testing.T) {
	f := &fakeFinanceAPI{}
	svc := NewFinanceService(f, nil)

	require.NoError(t, svc.AddIncome(context.Background(), IncomeForm{Amount: " 12.5 ", Source: " tips "}))
	assert.Equal(t, []models.NewIncome{{Amount: 12.5, Source: "tips"}}, f.addedIncomes)

	err := svc.AddIncome(context.Background(), IncomeForm{})
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Len(t, f.addedIncomes, 1)
}

func TestFinanceService_AddIncome_Failure(t *testing.T) {
	boom := errors.New("boom")
	err := NewFinanceService(&fakeFinanceAPI{addErr: boom}, nil).
		AddIncome(context.Background(), IncomeForm{Amount: "1"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, MsgAddIncomeFailed, err.Error())
}

func TestFinanceService_AddExpense(t *testing.T) {
	f := &fakeFinanceAPI{}
	svc := NewFinanceService(f, nil)

	require.NoError(t, svc.AddExpense(context.Background(), ExpenseForm{Category: " food ", Amount: "3"}))
	assert.Equal(t, []models.NewExpense{{Category: "food", Amount: 3}}, f.addedExpenses)

	err := svc.AddExpense(context.Background(), ExpenseForm{Category: "food"})
	assert.Equal(t, "Please provide both category and amount.", err.Error())

	f.addErr = errors.New("boom")
	err = svc.AddExpense(context.Background(), ExpenseForm{Category: "food", Amount: "3"})
	assert.Equal(t, MsgAddExpenseFailed, err.Error())
}

func TestFinanceService_ListsWrapErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewFinanceService(&fakeFinanceAPI{incomesErr: boom, expensesErr: boom}, nil)

	_, err := svc.Incomes(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.Expenses(context.Background())
	assert.ErrorIs(t, err, boom)
}
