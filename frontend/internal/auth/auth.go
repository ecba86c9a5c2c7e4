// Package auth is the single source of truth for who is logged in during a
// request. State is read from persistent storage once per page load and
// changed only through Login and Logout.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/session"
	"github.com/dondesang/dondesang/shared/domain"
	"github.com/dondesang/dondesang/shared/logger"
)

// State is an immutable snapshot of the auth context. The zero value is the
// loading state: nothing has been read from storage yet.
type State struct {
	user   *domain.Session
	loaded bool
}

// Loading is true until storage has been read.
func (s State) Loading() bool { return !s.loaded }

// User returns the logged-in identity, if any.
func (s State) User() (domain.Session, bool) {
	if s.user == nil {
		return domain.Session{}, false
	}
	return *s.user, true
}

func (s State) IsAuthenticated() bool { return s.user != nil }

func (s State) IsAdmin() bool { return s.user != nil && s.user.IsAdmin() }

func authenticated(u domain.Session) State { return State{user: &u, loaded: true} }

var anonymous = State{loaded: true}

type Provider struct {
	storage session.Storage
}

func NewProvider(storage session.Storage) *Provider {
	return &Provider{storage: storage}
}

// Init reads the stored record. A record that does not parse or lacks part of
// the identity is removed from storage and the user is treated as logged out.
func (p *Provider) Init(w http.ResponseWriter, r *http.Request) State {
	raw, present := p.storage.Get(r)
	if !present {
		return anonymous
	}

	var u domain.Session
	if err := json.Unmarshal([]byte(raw), &u); err != nil || !u.Complete() {
		logger.Log.Warn("discarding malformed stored session", "error", err)
		if err := p.storage.Remove(w, r); err != nil {
			logger.Log.Error("failed to clear stored session", "error", err)
		}
		return anonymous
	}
	return authenticated(u)
}

// Login persists u and returns the authenticated state. It does not check
// that u is complete: callers reject partial identities beforehand.
func (p *Provider) Login(w http.ResponseWriter, r *http.Request, u domain.Session) (State, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return State{}, fmt.Errorf("encode session: %w", err)
	}
	if err := p.storage.Set(w, r, string(raw)); err != nil {
		return State{}, fmt.Errorf("store session: %w", err)
	}
	return authenticated(u), nil
}

// Logout removes the stored record. The returned state is logged out even
// when storage fails.
func (p *Provider) Logout(w http.ResponseWriter, r *http.Request) State {
	if err := p.storage.Remove(w, r); err != nil {
		logger.Log.Error("failed to clear stored session", "error", err)
	}
	return anonymous
}

type contextKey struct{}

func WithState(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the state attached to ctx, or the loading state.
func FromContext(ctx context.Context) State {
	s, _ := ctx.Value(contextKey{}).(State)
	return s
}
