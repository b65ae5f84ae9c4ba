package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fintrack/internal/client/guard"
	"github.com/dmitrijs2005/fintrack/internal/client/models"
	"github.com/dmitrijs2005/fintrack/internal/client/services"
)

func (a *App) renderDashboard(ctx context.Context) error {
	ov := a.finance.Overview(ctx)
	if a.currentView() != guard.ViewHome {
		// the session ended while loading
		return nil
	}

	printlnFn("== Dashboard ==")
	if ov.Balance != nil {
		printlnFn(fmt.Sprintf("Current Balance: $%s", models.Amount(*ov.Balance)))
	} else {
		printlnFn("Current Balance: unavailable")
	}

	printlnFn("")
	printlnFn("Incomes")
	if len(ov.Incomes) == 0 {
		printlnFn("No incomes found.")
	}
	for _, in := range ov.Incomes {
		if in.Source != "" {
			printlnFn("  " + in.Source)
		}
		printlnFn(fmt.Sprintf("    Amount: $%s", in.Amount))
	}

	printlnFn("")
	printlnFn("Expenses")
	if len(ov.Expenses) == 0 {
		printlnFn("No expenses found.")
	}
	for _, e := range ov.Expenses {
		printlnFn("  Description: " + e.Category)
		printlnFn(fmt.Sprintf("    Amount: $%s", e.Amount))
	}
	return nil
}

// AddIncome prompts for a new income on the dashboard and refreshes it.
func (a *App) AddIncome(ctx context.Context) error {
	ok, err := a.onDashboard(ctx)
	if !ok || err != nil {
		return err
	}

	var f services.IncomeForm
	if f.Source, err = getSimpleText(a.reader, "Income Source (optional)", a.out); err != nil {
		return err
	}
	if f.Amount, err = getSimpleText(a.reader, "Amount", a.out); err != nil {
		return err
	}
	if f.Date, err = getSimpleText(a.reader, "Date, YYYY-MM-DD (optional)", a.out); err != nil {
		return err
	}

	if err := a.finance.AddIncome(ctx, f); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Income added.")
	return a.Go(ctx, guard.ViewHome)
}

// AddExpense prompts for a new expense on the dashboard and refreshes it.
func (a *App) AddExpense(ctx context.Context) error {
	ok, err := a.onDashboard(ctx)
	if !ok || err != nil {
		return err
	}

	var f services.ExpenseForm
	if f.Category, err = getSimpleText(a.reader, "Category", a.out); err != nil {
		return err
	}
	if f.Amount, err = getSimpleText(a.reader, "Amount", a.out); err != nil {
		return err
	}

	if err := a.finance.AddExpense(ctx, f); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Expense added successfully!")
	return a.Go(ctx, guard.ViewHome)
}

// onDashboard navigates to the dashboard without rendering it. When the
// guard redirects elsewhere, that view is rendered and ok is false.
func (a *App) onDashboard(ctx context.Context) (ok bool, err error) {
	view, err := a.open(guard.ViewHome)
	if err != nil {
		return false, err
	}
	if view != guard.ViewHome {
		return false, a.render(ctx, view)
	}
	return true, nil
}
