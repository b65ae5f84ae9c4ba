// Package common contains shared constants and sentinel errors used across
// fintrack components.
package common

const (
	// AuthorizationHeaderName carries the session token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the raw token in the Authorization header.
	BearerPrefix = "Bearer "

	// TokenStorageKey is the fixed key of the persisted session token.
	TokenStorageKey = "authToken"
)

// REST paths of the finance API.
const (
	PathRegister     = "/user/register"
	PathLogin        = "/user/login"
	PathListIncomes  = "/incomes/list-incomes"
	PathAddIncome    = "/incomes/add-income"
	PathListExpenses = "/expenses/list-expenses"
	PathAddExpense   = "/expenses/add-expense"
	PathGetBalance   = "/balance/get-balance"
)
