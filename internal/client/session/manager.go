package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/client/tokenstore"
	"github.com/dmitrijs2005/fintrack/internal/logging"
)

// Reason tells observers why the session changed.
type Reason string

const (
	ReasonRestored     Reason = "restored"
	ReasonSignedIn     Reason = "signed_in"
	ReasonDecodeFailed Reason = "decode_failed"
	ReasonLogout       Reason = "logout"
	ReasonUnauthorized Reason = "unauthorized"
	ReasonExpired      Reason = "expired"
)

// Event is delivered to subscribers after every session change.
type Event struct {
	State  State
	Reason Reason
}

// Observer receives session events. It runs on the goroutine that changed
// the session and may call back into the Manager.
type Observer func(Event)

type subscriber struct {
	id int
	fn Observer
}

// Manager owns the client session: the token, its decoded claims, and the
// copy persisted in the token store.
//
// There is a single writer at a time; readers always see a complete State.
// Observers are called synchronously in subscription order once the change
// is applied. Events of concurrent mutations are not ordered relative to
// each other; the last mutation to finish defines the final state.
type Manager struct {
	store   tokenstore.Store
	decoder TokenDecoder
	logger  logging.Logger

	expiryCheck bool
	now         func() time.Time

	writeMu sync.Mutex

	mu    sync.RWMutex
	state State

	subMu  sync.Mutex
	subs   []subscriber
	nextID int
}

type Option func(*Manager)

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithExpiryCheck makes Initialize drop a persisted token whose exp claim
// is in the past. now defaults to time.Now.
func WithExpiryCheck(now func() time.Time) Option {
	return func(m *Manager) {
		m.expiryCheck = true
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(store tokenstore.Store, decoder TokenDecoder, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		decoder: decoder,
		logger:  logging.Discard(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Initialize restores the session from the token store. A token that does
// not decode (or has expired, with the expiry check on) is removed and the
// session starts logged out.
func (m *Manager) Initialize(ctx context.Context) State {
	ev := m.initialize(ctx)
	m.publish(ev)
	return ev.State
}

func (m *Manager) initialize(ctx context.Context) Event {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	token, ok := m.store.Read(ctx)
	if !ok {
		m.setState(State{})
		return Event{Reason: ReasonRestored}
	}

	claims, err := m.decoder.Decode(token)
	if err != nil {
		m.logger.Warn(ctx, "discarding unreadable stored token", "error", err)
		m.clearStore(ctx)
		m.setState(State{})
		return Event{Reason: ReasonRestored}
	}

	if m.expiryCheck && claims.Expired(m.now()) {
		m.logger.Info(ctx, "stored token expired", "expires_at", claims.ExpiresAt)
		m.clearStore(ctx)
		m.setState(State{})
		return Event{Reason: ReasonExpired}
	}

	st := State{Token: token, Claims: claims}
	m.setState(st)
	m.logger.Debug(ctx, "session restored", "user", claims.DisplayName())
	return Event{State: st, Reason: ReasonRestored}
}

// SetToken installs a freshly issued token. A token that does not decode
// leaves the session logged out (with DecodeFailed set) and the decode
// error is returned so the caller can tell the user.
//
// Surrounding whitespace is dropped before anything else, so the store and
// the bearer header carry the same token the decoder saw.
//
// The token is decoded before it is written, so a malformed token never
// reaches the store. A store write failure is logged and the session stays
// usable for the lifetime of the process.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	ev, err := m.setToken(ctx, token)
	m.publish(ev)
	return err
}

func (m *Manager) setToken(ctx context.Context, token string) (Event, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	token = strings.TrimSpace(token)
	claims, err := m.decoder.Decode(token)
	if err != nil {
		m.clearStore(ctx)
		st := State{DecodeFailed: true}
		m.setState(st)
		return Event{State: st, Reason: ReasonDecodeFailed}, err
	}

	if err := m.store.Write(ctx, token); err != nil {
		m.logger.Warn(ctx, "session token not persisted", "error", err)
	}

	st := State{Token: token, Claims: claims}
	m.setState(st)
	m.logger.Info(ctx, "signed in", "user", claims.DisplayName())
	return Event{State: st, Reason: ReasonSignedIn}, nil
}

// Clear logs the user out. Calling it again is harmless.
// Subscribers always get a ReasonLogout event.
func (m *Manager) Clear(ctx context.Context) {
	ev, _ := m.clear(ctx, ReasonLogout)
	m.publish(ev)
}

// Invalidate drops a session the server refused. Unlike Clear, it only
// notifies subscribers when there was a session to drop, so a burst of
// rejected requests produces one event.
func (m *Manager) Invalidate(ctx context.Context) {
	ev, had := m.clear(ctx, ReasonUnauthorized)
	if had {
		m.publish(ev)
	}
}

func (m *Manager) clear(ctx context.Context, reason Reason) (Event, bool) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	had := m.State().Authenticated()
	m.clearStore(ctx)
	m.setState(State{})
	if had {
		m.logger.Info(ctx, "session cleared", "reason", string(reason))
	}
	return Event{Reason: reason}, had
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Token returns the current token, or "" when logged out. It lets the
// Manager serve as the API client's token source.
func (m *Manager) Token() string {
	return m.State().Token
}

// Subscribe registers fn for session events and returns a function that
// removes it.
func (m *Manager) Subscribe(fn Observer) (unsubscribe func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			defer m.subMu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (m *Manager) setState(st State) {
	m.mu.Lock()
	m.state = st
	m.mu.Unlock()
}

func (m *Manager) clearStore(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn(ctx, "failed to remove stored token", "error", err)
	}
}

func (m *Manager) publish(ev Event) {
	m.subMu.Lock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.subMu.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}
