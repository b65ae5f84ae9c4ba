// Package analytics builds the income-vs-expense comparison shown on the
// analytics view.
package analytics

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
)

const NoDataMessage = "No data available to display."

// Series pairs the i-th income with the i-th expense. The shorter list is
// padded with zeros so both have len(Labels) points.
type Series struct {
	Title    string
	Labels   []string
	Incomes  []float64
	Expenses []float64

	incomeCount, expenseCount int
}

func BuildSeries(incomes []models.Income, expenses []models.Expense) Series {
	n := max(len(incomes), len(expenses))

	s := Series{
		Title: fmt.Sprintf("Income vs Expenses Analysis (%d Incomes, %d Expenses)",
			len(incomes), len(expenses)),
		Labels:       make([]string, n),
		Incomes:      make([]float64, n),
		Expenses:     make([]float64, n),
		incomeCount:  len(incomes),
		expenseCount: len(expenses),
	}
	for i := range n {
		s.Labels[i] = fmt.Sprintf("Entry %d", i+1)
	}
	for i, in := range incomes {
		s.Incomes[i] = float64(in.Amount)
	}
	for i, e := range expenses {
		s.Expenses[i] = float64(e.Amount)
	}
	return s
}

// Empty reports whether there were neither incomes nor expenses.
func (s Series) Empty() bool {
	return s.incomeCount == 0 && s.expenseCount == 0
}

// Render writes s as a text table, or NoDataMessage when it is empty.
func (s Series) Render(w io.Writer) error {
	if s.Empty() {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	if _, err := fmt.Fprintln(w, s.Title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "\tIncomes\tExpenses\t")
	for i, label := range s.Labels {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", label, money(s.Incomes[i]), money(s.Expenses[i]))
	}
	return tw.Flush()
}

func money(v float64) string {
	return models.Amount(v).String()
}
