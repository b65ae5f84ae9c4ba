package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrDecode is matched by every DecodeError.
var ErrDecode = errors.New("malformed session token")

// DecodeError reports a token that cannot be split into header, claims and
// signature, or whose segments are not valid base64url JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// TokenDecoder turns a raw token into claims.
type TokenDecoder interface {
	Decode(token string) (*Claims, error)
}

// Decoder reads JWT claims without checking the signature.
//
// The result is only good for display and view gating. The server verifies
// every token it receives; nothing here is a security boundary.
type Decoder struct {
	parser *jwt.Parser
}

func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

func (d *Decoder) Decode(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, &DecodeError{Err: errors.New("empty token")}
	}

	mc := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, mc); err != nil {
		return nil, &DecodeError{Err: err}
	}

	c := &Claims{
		Subject:  stringClaim(mc, "sub"),
		UserID:   stringClaim(mc, "userId", "user_id", "id"),
		Username: stringClaim(mc, "username", "name", "preferred_username"),
		Email:    stringClaim(mc, "email"),
		Raw:      map[string]any(mc),
	}
	// a mistyped exp/iat is ignored rather than rejected: the payload is
	// still well-formed and the server decides whether it is acceptable
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	return c, nil
}

// stringClaim returns the first non-empty claim among keys. Numeric ids are
// formatted without a fractional part.
func stringClaim(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := mc[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
