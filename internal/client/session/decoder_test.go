package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_ValidToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := time.Now().Add(-time.Minute).Truncate(time.Second)
	tok := signToken(t, jwt.MapClaims{
		"sub":      "u-1",
		"userId":   "u-1",
		"username": "bob",
		"email":    "bob@example.org",
		"exp":      exp.Unix(),
		"iat":      iat.Unix(),
		"role":     "user",
	})

	c, err := NewDecoder().Decode(tok)
	require.NoError(t, err)

	assert.Equal(t, "u-1", c.Subject)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, "bob", c.Username)
	assert.Equal(t, "bob@example.org", c.Email)
	assert.True(t, exp.Equal(c.ExpiresAt))
	assert.True(t, iat.Equal(c.IssuedAt))
	assert.Equal(t, "user", c.Raw["role"])
}

func TestDecoder_SignatureIsNotVerified(t *testing.T) {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).
		SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	c, err := NewDecoder().Decode(s)
	require.NoError(t, err)
	assert.Equal(t, "x", c.Subject)
}

func TestDecoder_NumericIDAndMissingTimes(t *testing.T) {
	c, err := NewDecoder().Decode(signToken(t, jwt.MapClaims{"id": float64(7)}))
	require.NoError(t, err)

	assert.Equal(t, "7", c.UserID)
	assert.True(t, c.ExpiresAt.IsZero())
	assert.True(t, c.IssuedAt.IsZero())
}

func TestDecoder_MistypedExpIsIgnored(t *testing.T) {
	c, err := NewDecoder().Decode(signToken(t, jwt.MapClaims{"sub": "a", "exp": "tomorrow"}))
	require.NoError(t, err)
	assert.True(t, c.ExpiresAt.IsZero())
}

func TestDecoder_Malformed(t *testing.T) {
	valid := validToken(t)

	cases := map[string]string{
		"empty":            "",
		"blank":            "   ",
		"no dots":          "abc",
		"two segments":     "aaa.bbb",
		"four segments":    "a.b.c.d",
		"bad base64":       "!!!.???.sig",
		"payload not json": "eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig",
		"truncated":        valid[:len(valid)/2],
	}

	d := NewDecoder()
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := d.Decode(in)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrDecode))

			var de *DecodeError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestClaims_DisplayName(t *testing.T) {
	var nilClaims *Claims
	assert.Equal(t, "", nilClaims.DisplayName())
	assert.Equal(t, "u", (&Claims{Username: "u", Email: "e"}).DisplayName())
	assert.Equal(t, "e", (&Claims{Email: "e", Subject: "s"}).DisplayName())
	assert.Equal(t, "id", (&Claims{UserID: "id", Subject: "s"}).DisplayName())
	assert.Equal(t, "s", (&Claims{Subject: "s"}).DisplayName())
}

func TestClaims_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&Claims{}).Expired(now), "no exp never expires")
	assert.False(t, (&Claims{ExpiresAt: now.Add(time.Second)}).Expired(now))
	assert.True(t, (&Claims{ExpiresAt: now}).Expired(now))
	assert.True(t, (&Claims{ExpiresAt: now.Add(-time.Hour)}).Expired(now))
}
