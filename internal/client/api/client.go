// Package api is the client side of the finance REST API.
//
// Every request carries "Authorization: Bearer <token>" when the token
// source has a token. Transport failures are reported as ErrUnavailable,
// HTTP failures as *StatusError. A 401/403 on any endpoint other than
// login and registration triggers the configured unauthorized handler,
// which normally invalidates the local session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/logging"
)

// TokenSource yields the token to attach to outgoing requests.
// An empty string means "send no Authorization header".
type TokenSource interface {
	Token() string
}

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	logger         logging.Logger
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithUnauthorizedHandler sets fn to run when the server rejects the
// session (401/403) on an authenticated endpoint.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
		logger:  logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do sends body (JSON-encoded, unless nil) to path and decodes a 2xx
// response into out (unless nil).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
		if isAuthStatus(resp.StatusCode) && !isCredentialEndpoint(path) && c.onUnauthorized != nil {
			c.logger.Warn(ctx, "session rejected by server", "path", path, "status", resp.StatusCode)
			c.onUnauthorized(ctx)
		}
		return se
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrUnexpectedPayload)
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// isCredentialEndpoint reports whether a 401 from path means "wrong
// credentials" rather than "session no longer valid".
func isCredentialEndpoint(path string) bool {
	return strings.HasPrefix(path, common.PathLogin) || strings.HasPrefix(path, common.PathRegister)
}

func readErrorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(b) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
