package session

import (
	"context"
	"sync"

	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/models"
)

// ProfileSource fetches the profile of the token owner.
type ProfileSource interface {
	Me(ctx context.Context) (models.User, error)
}

// CurrentUser lazily resolves and caches the display name of the signed-in
// user. It subscribes to the session and drops the cached name on every
// token change, so signing out and back in refetches.
type CurrentUser struct {
	session     *Session
	source      ProfileSource
	logger      *logger.Logger
	unsubscribe func()

	mu        sync.Mutex
	cachedFor string
	username  string
}

func NewCurrentUser(session *Session, source ProfileSource, log *logger.Logger) *CurrentUser {
	if log == nil {
		log = logger.Nop()
	}
	c := &CurrentUser{session: session, source: source, logger: log}
	c.unsubscribe = session.OnChange(c.forget)
	return c
}

// Close stops following session changes.
func (c *CurrentUser) Close() {
	c.unsubscribe()
}

func (c *CurrentUser) forget(string) {
	c.mu.Lock()
	c.cachedFor = ""
	c.username = ""
	c.mu.Unlock()
}

// Username returns the display name for the active token, fetching it on
// first use. Failures are logged and yield "" so the caller simply shows no
// name; they are not cached and the next call retries.
func (c *CurrentUser) Username(ctx context.Context) string {
	token := c.session.Token()
	if token == "" {
		return ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cachedFor == token {
		return c.username
	}

	user, err := c.source.Me(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("current user lookup failed")
		return ""
	}

	c.cachedFor = token
	c.username = user.Username
	return c.username
}

// Cached returns the last resolved name for the active token without any
// network call.
func (c *CurrentUser) Cached() string {
	token := c.session.Token()

	c.mu.Lock()
	defer c.mu.Unlock()

	if token == "" || c.cachedFor != token {
		return ""
	}
	return c.username
}
