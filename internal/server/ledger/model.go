// Package ledger stores each user's incomes and expenses and derives the
// balance from them.
package ledger

import "time"

type Income struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Source    string    `json:"source,omitempty"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Expense struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
