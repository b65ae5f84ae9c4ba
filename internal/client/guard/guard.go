// Package guard decides which client views are reachable for a session.
//
// The guard only keeps the client from showing screens that make no sense
// for the current session. It is not a security boundary: the token is
// never verified here and the server enforces access on every request.
package guard

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/fintrack/internal/client/session"
)

// Views known to the client.
const (
	ViewLogin     = "/login"
	ViewRegister  = "/register"
	ViewHome      = "/"
	ViewAnalytics = "/analytics"
)

// Class groups views by who may see them.
type Class int

const (
	ClassUnknown Class = iota
	// ClassPublicOnly views are for logged-out users only.
	ClassPublicOnly
	// ClassProtected views need a session.
	ClassProtected
)

var routes = map[string]Class{
	ViewLogin:     ClassPublicOnly,
	ViewRegister:  ClassPublicOnly,
	ViewHome:      ClassProtected,
	ViewAnalytics: ClassProtected,
}

// maxHops bounds Resolve. The table never needs more than two.
const maxHops = 4

var ErrRedirectLoop = errors.New("guard: redirect loop")

// Decision is the outcome for one requested view.
// When Allow is false, Redirect names the view to go to instead.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision { return Decision{Allow: true} }
func redirect(to string) Decision { return Decision{Redirect: to} }
func (d Decision) IsRedirect() bool { return !d.Allow }

// Normalize trims whitespace, query and fragment, and trailing slashes.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ClassOf reports the class of a view path.
func ClassOf(path string) Class {
	return routes[Normalize(path)]
}

// Decide applies the routing policy:
//
//	public-only + session     -> redirect to home
//	public-only + no session  -> allow
//	protected   + session     -> allow
//	protected   + no session  -> redirect to login
//	unknown                   -> redirect to home
func Decide(path string, st session.State) Decision {
	switch ClassOf(path) {
	case ClassPublicOnly:
		if st.Authenticated() {
			return redirect(ViewHome)
		}
		return allow()
	case ClassProtected:
		if st.Authenticated() {
			return allow()
		}
		return redirect(ViewLogin)
	default:
		return redirect(ViewHome)
	}
}

// Resolve follows redirects from path until a view is allowed and returns
// that view.
func Resolve(path string, st session.State) (string, error) {
	current := Normalize(path)
	for i := 0; i < maxHops; i++ {
		d := Decide(current, st)
		if d.Allow {
			return current, nil
		}
		current = d.Redirect
	}
	return "", ErrRedirectLoop
}
