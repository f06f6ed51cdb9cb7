package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kittygram-client/internal/config"
	"github.com/MKhiriev/kittygram-client/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// Tokens keeps the credential token between runs.
	Tokens TokenRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN (creating it
// when missing), applies migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Tokens: NewTokenRepository(db, log),
		db:     db,
	}, nil
}

// Close releases the database connection. It is safe on a nil receiver and
// on storages built without a database.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
