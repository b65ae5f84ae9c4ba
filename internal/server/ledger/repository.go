package ledger

import "context"

type Repository interface {
	AddIncome(ctx context.Context, in *Income) (*Income, error)
	AddExpense(ctx context.Context, e *Expense) (*Expense, error)
	// Incomes and Expenses return a user's records oldest first.
	Incomes(ctx context.Context, userID string) ([]Income, error)
	Expenses(ctx context.Context, userID string) ([]Expense, error)
}
