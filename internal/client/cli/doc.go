// Package cli provides the interactive fintrack command-line client.
//
// It wires configuration, the local token database, the session manager,
// the finance API client and an interactive REPL. Views (login, register,
// dashboard, analytics) are addressed by path and every navigation goes
// through the route guard, so a logged-out user asking for the dashboard
// lands on the login view and a logged-in user asking for login lands on
// the dashboard.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
