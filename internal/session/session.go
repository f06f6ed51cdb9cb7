// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authentication state of the client: the
// credential token, the route guard built on it and the lazily resolved
// display name of the signed-in user.
//
// A [Session] is created once per process and passed explicitly to every
// component that needs the token; there is no package-level state.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/store"
)

// Listener is notified after the token changes. token is empty after Clear.
type Listener func(token string)

// Session is the process-wide credential state backed by a
// [store.TokenRepository]. It satisfies adapter.TokenSource.
type Session struct {
	mu    sync.RWMutex
	token string

	repo   store.TokenRepository
	logger *logger.Logger

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

// New returns an empty session. Call Load to pick up a stored token.
func New(repo store.TokenRepository, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		repo:      repo,
		logger:    log,
		listeners: make(map[int]Listener),
	}
}

// Load re-derives the in-memory token from the repository. A missing token
// leaves the session unauthenticated without error; an unreadable store also
// leaves it unauthenticated but the error is returned.
func (s *Session) Load(ctx context.Context) error {
	token, err := s.repo.Get(ctx)
	if errors.Is(err, store.ErrTokenNotFound) {
		token, err = "", nil
	}
	if err != nil {
		token = ""
		err = fmt.Errorf("load session token: %w", err)
	}

	s.swap(token)
	return err
}

// Token returns the current credential, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is present. Expiry is not
// checked; it surfaces as an unauthorized response from the service.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken persists token and makes it current. Blank tokens are rejected
// with [store.ErrEmptyToken].
func (s *Session) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return store.ErrEmptyToken
	}

	if err := s.repo.Save(ctx, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}

	s.swap(token)
	s.logger.Debug().Msg("session token set")
	return nil
}

// Clear drops the token. The in-memory state is cleared even when the
// repository fails; the repository error is returned.
func (s *Session) Clear(ctx context.Context) error {
	err := s.repo.Delete(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to delete stored session token")
		err = fmt.Errorf("delete session token: %w", err)
	}

	s.swap("")
	s.logger.Debug().Msg("session cleared")
	return err
}

// OnChange registers fn and returns a function that unregisters it.
func (s *Session) OnChange(fn Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// swap stores token and notifies listeners when it actually changed.
func (s *Session) swap(token string) {
	s.mu.Lock()
	changed := s.token != token
	s.token = token
	s.mu.Unlock()

	if !changed {
		return
	}

	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(token)
	}
}
