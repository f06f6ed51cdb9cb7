package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/migrations"
)

// DB is the SQLite connection shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations and logs what ran.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("local schema migrated")
	}
	return nil
}
