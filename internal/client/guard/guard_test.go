package guard

import (
	"testing"

	"github.com/dmitrijs2005/fintrack/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	loggedOut = session.State{}
	loggedIn  = session.State{Token: "abc", Claims: &session.Claims{Subject: "1"}}
)

func TestDecide_Table(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		state session.State
		want  Decision
	}{
		{"login without session", "/login", loggedOut, Decision{Allow: true}},
		{"login with session", "/login", loggedIn, Decision{Redirect: "/"}},
		{"register without session", "/register", loggedOut, Decision{Allow: true}},
		{"register with session", "/register", loggedIn, Decision{Redirect: "/"}},
		{"home without session", "/", loggedOut, Decision{Redirect: "/login"}},
		{"home with session", "/", loggedIn, Decision{Allow: true}},
		{"analytics without session", "/analytics", loggedOut, Decision{Redirect: "/login"}},
		{"analytics with session", "/analytics", loggedIn, Decision{Allow: true}},
		{"unknown without session", "/unknown", loggedOut, Decision{Redirect: "/"}},
		{"unknown with session", "/unknown", loggedIn, Decision{Redirect: "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.path, tt.state))
		})
	}
}

func TestDecide_OnlyTokenPresenceMatters(t *testing.T) {
	// a token without claims still counts as a session for gating
	st := session.State{Token: "abc"}
	assert.Equal(t, Decision{Allow: true}, Decide("/", st))
	assert.True(t, Decide("/login", st).IsRedirect())
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"/":              "/",
		"":               "/",
		"login":          "/login",
		"/login/":        "/login",
		" /register ":    "/register",
		"/analytics?x=1": "/analytics",
		"/login#top":     "/login",
		"//":             "/",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, ClassPublicOnly, ClassOf("/login"))
	assert.Equal(t, ClassPublicOnly, ClassOf("/register/"))
	assert.Equal(t, ClassProtected, ClassOf("/"))
	assert.Equal(t, ClassProtected, ClassOf("analytics"))
	assert.Equal(t, ClassUnknown, ClassOf("/settings"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		path  string
		state session.State
		want  string
	}{
		{"/login", loggedOut, "/login"},
		{"/login", loggedIn, "/"},
		{"/", loggedOut, "/login"},
		{"/unknown", loggedOut, "/login"},
		{"/unknown", loggedIn, "/"},
		{"/analytics", loggedIn, "/analytics"},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.path, tt.state)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Resolve(%q)", tt.path)
	}
}
