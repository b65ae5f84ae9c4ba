// Package models defines the payloads exchanged with the finance API.
// Records are passed through as the server sends them; the client does not
// interpret them beyond display and the analytics series.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID accepts both numeric and string identifiers from the server.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Amount is a money value that may arrive as a JSON number or a numeric string.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(f)
	return nil
}

func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

type Income struct {
	ID     ID     `json:"id,omitempty"`
	Source string `json:"source,omitempty"`
	Amount Amount `json:"amount"`
	Date   string `json:"date,omitempty"`
}

type Expense struct {
	ID       ID     `json:"id,omitempty"`
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
	Date     string `json:"date,omitempty"`
}

// NewIncome is the body of POST /incomes/add-income.
type NewIncome struct {
	Amount float64 `json:"amount"`
	Source string  `json:"source,omitempty"`
	Date   string  `json:"date,omitempty"`
}

// NewExpense is the body of POST /expenses/add-expense.
type NewExpense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Credentials is the body of POST /user/login. Username may be an email.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the body of POST /user/register.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
