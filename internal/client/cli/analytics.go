package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/fintrack/internal/client/analytics"
	"github.com/dmitrijs2005/fintrack/internal/client/guard"
)

func (a *App) renderAnalytics(ctx context.Context) error {
	incomes, err := a.finance.Incomes(ctx)
	if err != nil {
		a.logger.Error(ctx, "error fetching incomes", "error", err)
	}
	expenses, err := a.finance.Expenses(ctx)
	if err != nil {
		a.logger.Error(ctx, "error fetching expenses", "error", err)
	}
	if a.currentView() != guard.ViewAnalytics {
		return nil
	}

	var sb strings.Builder
	if err := analytics.BuildSeries(incomes, expenses).Render(&sb); err != nil {
		return err
	}
	printlnFn("== Analytics ==")
	printlnFn(strings.TrimRight(sb.String(), "\n"))
	return nil
}
