package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fintrack/internal/logging"
	"github.com/dmitrijs2005/fintrack/internal/server/ledger"
	"github.com/dmitrijs2005/fintrack/internal/server/users"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*users.Session, error)
	Login(ctx context.Context, login, password string) (*users.Session, error)
}

type LedgerService interface {
	AddIncome(ctx context.Context, userID, source string, amount float64, date string) (*ledger.Income, error)
	AddExpense(ctx context.Context, userID, category string, amount float64) (*ledger.Expense, error)
	Incomes(ctx context.Context, userID string) ([]ledger.Income, error)
	Expenses(ctx context.Context, userID string) ([]ledger.Expense, error)
	Balance(ctx context.Context, userID string) (float64, error)
}

var (
	_ UserService   = (*users.Service)(nil)
	_ LedgerService = (*ledger.Service)(nil)
)

type handler struct {
	users  UserService
	ledger LedgerService
	logger logging.Logger
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    userView `json:"user"`
}

type addIncomeRequest struct {
	Amount *float64 `json:"amount"`
	Source string   `json:"source"`
	Date   string   `json:"date"`
}

type addExpenseRequest struct {
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
}

func (h *handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	sess, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.Info(r.Context(), "Registered", "username", sess.User.UserName)
	writeJSON(w, http.StatusCreated, newTokenResponse("Registration successful", sess))
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	login := req.Username
	if login == "" {
		login = req.Email
	}

	sess, err := h.users.Login(r.Context(), login, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newTokenResponse("Login successful", sess))
}

func (h *handler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledger.Incomes(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]ledger.Income{"incomes": items})
}

func (h *handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledger.Expenses(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]ledger.Expense{"expenses": items})
}

func (h *handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	b, err := h.ledger.Balance(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"balance": b})
}

func (h *handler) AddIncome(w http.ResponseWriter, r *http.Request) {
	var req addIncomeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.Amount == nil {
		writeMessage(w, http.StatusBadRequest, "amount is required")
		return
	}

	in, err := h.ledger.AddIncome(r.Context(), userIDFrom(r.Context()), req.Source, *req.Amount, req.Date)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, in)
}

func (h *handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.Amount == nil {
		writeMessage(w, http.StatusBadRequest, "amount is required")
		return
	}

	e, err := h.ledger.AddExpense(r.Context(), userIDFrom(r.Context()), req.Category, *req.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeMessage(w, status, msg)
}

func newTokenResponse(msg string, s *users.Session) tokenResponse {
	return tokenResponse{
		Message: msg,
		Token:   s.AccessToken,
		User:    userView{ID: s.User.ID, Username: s.User.UserName, Email: s.User.Email},
	}
}
