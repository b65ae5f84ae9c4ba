package ledger

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/fintrack/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddIncome(ctx context.Context, userID, source string, amount float64, date string) (*Income, error) {
	if !validAmount(amount) {
		return nil, fmt.Errorf("%w: amount must be a finite number", common.ErrorValidation)
	}
	return s.repo.AddIncome(ctx, &Income{
		UserID: userID,
		Source: strings.TrimSpace(source),
		Amount: amount,
		Date:   strings.TrimSpace(date),
	})
}

func (s *Service) AddExpense(ctx context.Context, userID, category string, amount float64) (*Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", common.ErrorValidation)
	}
	if !validAmount(amount) {
		return nil, fmt.Errorf("%w: amount must be a finite number", common.ErrorValidation)
	}
	return s.repo.AddExpense(ctx, &Expense{UserID: userID, Category: category, Amount: amount})
}

func (s *Service) Incomes(ctx context.Context, userID string) ([]Income, error) {
	return s.repo.Incomes(ctx, userID)
}

func (s *Service) Expenses(ctx context.Context, userID string) ([]Expense, error) {
	return s.repo.Expenses(ctx, userID)
}

// Balance is the sum of the user's incomes minus the sum of their expenses.
func (s *Service) Balance(ctx context.Context, userID string) (float64, error) {
	incomes, err := s.repo.Incomes(ctx, userID)
	if err != nil {
		return 0, err
	}
	expenses, err := s.repo.Expenses(ctx, userID)
	if err != nil {
		return 0, err
	}

	var b float64
	for _, in := range incomes {
		b += in.Amount
	}
	for _, e := range expenses {
		b -= e.Amount
	}
	return b, nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
