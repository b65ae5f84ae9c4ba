package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
	"github.com/dmitrijs2005/fintrack/internal/common"
)

// FinanceAPI is the set of typed endpoints the client consumes.
type FinanceAPI interface {
	Register(ctx context.Context, r models.Registration) (string, error)
	Login(ctx context.Context, c models.Credentials) (string, error)
	ListIncomes(ctx context.Context) ([]models.Income, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	GetBalance(ctx context.Context) (float64, error)
	AddIncome(ctx context.Context, in models.NewIncome) error
	AddExpense(ctx context.Context, e models.NewExpense) error
}

var _ FinanceAPI = (*Client)(nil)

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	Token       string `json:"token"`
	JWT         string `json:"jwt"`
	Message     string `json:"message"`
}

// Register creates an account and returns the session token the server
// issued for it.
func (c *Client) Register(ctx context.Context, r models.Registration) (string, error) {
	var resp tokenResponse
	if err := c.Do(ctx, http.MethodPost, common.PathRegister, r, &resp); err != nil {
		return "", err
	}
	tok := firstNonEmpty(resp.AccessToken, resp.Token)
	if tok == "" {
		return "", &TokenMissingError{Message: resp.Message}
	}
	return tok, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, cr models.Credentials) (string, error) {
	var resp tokenResponse
	if err := c.Do(ctx, http.MethodPost, common.PathLogin, cr, &resp); err != nil {
		return "", err
	}
	tok := firstNonEmpty(resp.AccessToken, resp.Token, resp.JWT)
	if tok == "" {
		return "", &TokenMissingError{Message: resp.Message}
	}
	return tok, nil
}

func (c *Client) ListIncomes(ctx context.Context) ([]models.Income, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, common.PathListIncomes, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Income](raw, "incomes")
}

func (c *Client) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, common.PathListExpenses, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Expense](raw, "expenses")
}

// GetBalance accepts either a bare number or {"balance": n}.
func (c *Client) GetBalance(ctx context.Context) (float64, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, common.PathGetBalance, nil, &raw); err != nil {
		return 0, err
	}
	return decodeBalance(raw)
}

func (c *Client) AddIncome(ctx context.Context, in models.NewIncome) error {
	return c.Do(ctx, http.MethodPost, common.PathAddIncome, in, nil)
}

func (c *Client) AddExpense(ctx context.Context, e models.NewExpense) error {
	return c.Do(ctx, http.MethodPost, common.PathAddExpense, e, nil)
}

func decodeList[T any](raw json.RawMessage, field string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", field, err)
		}
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedPayload, field)
	}
	inner, ok := wrapped[field]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrUnexpectedPayload, field)
	}
	items := []T{}
	if bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		return items, nil
	}
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	return items, nil
}

func decodeBalance(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var wrapped struct {
			Balance *models.Amount `json:"balance"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return 0, fmt.Errorf("decode balance: %w", err)
		}
		if wrapped.Balance == nil {
			return 0, fmt.Errorf("%w: missing %q", ErrUnexpectedPayload, "balance")
		}
		return float64(*wrapped.Balance), nil
	}

	var a models.Amount
	if err := json.Unmarshal(raw, &a); err != nil {
		return 0, fmt.Errorf("%w: balance: %w", ErrUnexpectedPayload, err)
	}
	return float64(a), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
