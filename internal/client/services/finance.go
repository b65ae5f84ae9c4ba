package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
	"github.com/dmitrijs2005/fintrack/internal/logging"
)

const (
	MsgAddIncomeFailed  = "Failed to add income. Please try again."
	MsgAddExpenseFailed = "Error adding expense. Please try again."
)

// FinanceAPI is the subset of the finance API behind the dashboard.
type FinanceAPI interface {
	ListIncomes(ctx context.Context) ([]models.Income, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	GetBalance(ctx context.Context) (float64, error)
	AddIncome(ctx context.Context, in models.NewIncome) error
	AddExpense(ctx context.Context, e models.NewExpense) error
}

// Overview is everything the dashboard shows. A section whose fetch failed
// is left empty and its error recorded; the other sections still render.
type Overview struct {
	Incomes  []models.Income
	Expenses []models.Expense
	// Balance is nil until it has been fetched successfully.
	Balance *float64

	IncomesErr  error
	ExpensesErr error
	BalanceErr  error
}

type FinanceService interface {
	Overview(ctx context.Context) Overview
	Incomes(ctx context.Context) ([]models.Income, error)
	Expenses(ctx context.Context) ([]models.Expense, error)
	AddIncome(ctx context.Context, f IncomeForm) error
	AddExpense(ctx context.Context, f ExpenseForm) error
}

type financeService struct {
	api    FinanceAPI
	logger logging.Logger
}

func NewFinanceService(a FinanceAPI, l logging.Logger) FinanceService {
	if l == nil {
		l = logging.Discard()
	}
	return &financeService{api: a, logger: l}
}

func (s *financeService) Overview(ctx context.Context) Overview {
	var ov Overview

	ov.Incomes, ov.IncomesErr = s.api.ListIncomes(ctx)
	if ov.IncomesErr != nil {
		s.logger.Error(ctx, "error fetching incomes", "error", ov.IncomesErr)
	}

	ov.Expenses, ov.ExpensesErr = s.api.ListExpenses(ctx)
	if ov.ExpensesErr != nil {
		s.logger.Error(ctx, "error fetching expenses", "error", ov.ExpensesErr)
	}

	b, err := s.api.GetBalance(ctx)
	if err != nil {
		ov.BalanceErr = err
		s.logger.Error(ctx, "error fetching balance", "error", err)
	} else {
		ov.Balance = &b
	}
	return ov
}

func (s *financeService) Incomes(ctx context.Context) ([]models.Income, error) {
	items, err := s.api.ListIncomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	return items, nil
}

func (s *financeService) Expenses(ctx context.Context) ([]models.Expense, error) {
	items, err := s.api.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return items, nil
}

// AddIncome posts the amount plus source and date when they were given.
func (s *financeService) AddIncome(ctx context.Context, f IncomeForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	amount, _ := parseAmount(f.Amount)

	if err := s.api.AddIncome(ctx, models.NewIncome{
		Amount: amount,
		Source: strings.TrimSpace(f.Source),
		Date:   strings.TrimSpace(f.Date),
	}); err != nil {
		s.logger.Error(ctx, "error adding income", "error", err)
		return &Failure{Message: MsgAddIncomeFailed, Err: err}
	}
	return nil
}

func (s *financeService) AddExpense(ctx context.Context, f ExpenseForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	amount, _ := parseAmount(f.Amount)

	err := s.api.AddExpense(ctx, models.NewExpense{Category: strings.TrimSpace(f.Category), Amount: amount})
	if err != nil {
		s.logger.Error(ctx, "error adding expense", "error", err)
		return &Failure{Message: MsgAddExpenseFailed, Err: err}
	}
	return nil
}
