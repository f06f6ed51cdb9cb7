package store

import (
	"context"
	"strings"
	"sync"
)

type memoryTokenRepository struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenRepository returns a process-local [TokenRepository]. It is
// used when the session must not outlive the process.
func NewMemoryTokenRepository() TokenRepository {
	return &memoryTokenRepository{}
}

func (m *memoryTokenRepository) Get(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" {
		return "", ErrTokenNotFound
	}
	return m.token, nil
}

func (m *memoryTokenRepository) Save(_ context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *memoryTokenRepository) Delete(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
