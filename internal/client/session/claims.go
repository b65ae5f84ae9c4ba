package session

import "time"

// Claims is the unverified identity carried by a session token.
// Raw keeps every claim as decoded from the payload.
type Claims struct {
	Subject   string
	UserID    string
	Username  string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Raw       map[string]any
}

// DisplayName picks the most readable identifier available.
func (c *Claims) DisplayName() string {
	switch {
	case c == nil:
		return ""
	case c.Username != "":
		return c.Username
	case c.Email != "":
		return c.Email
	case c.UserID != "":
		return c.UserID
	default:
		return c.Subject
	}
}

// Expired reports whether the token carried an exp claim that lies before now.
// Tokens without exp never expire from the client's point of view.
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}

// State is a snapshot of the client session.
//
// Token == "" means logged out, and then Claims is always nil.
// DecodeFailed is set when the last token handed to SetToken was rejected.
type State struct {
	Token        string
	Claims       *Claims
	DecodeFailed bool
}

func (s State) Authenticated() bool {
	return s.Token != ""
}
