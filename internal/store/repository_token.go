package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kittygram-client/internal/logger"
)

type tokenRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTokenRepository returns the SQLite-backed [TokenRepository].
func NewTokenRepository(db *DB, log *logger.Logger) TokenRepository {
	return &tokenRepository{db: db, logger: log, now: time.Now}
}

func (r *tokenRepository) Get(ctx context.Context) (string, error) {
	query, args, err := buildSelectTokenQuery()
	if err != nil {
		return "", fmt.Errorf("build select token query: %w", err)
	}

	var token string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.Get").Msg("error reading token")
		return "", fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	return token, nil
}

func (r *tokenRepository) Save(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	query, args, err := buildUpsertTokenQuery(token, r.now())
	if err != nil {
		return fmt.Errorf("build upsert token query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.Save").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	return nil
}

func (r *tokenRepository) Delete(ctx context.Context) error {
	query, args, err := buildDeleteTokenQuery()
	if err != nil {
		return fmt.Errorf("build delete token query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.Delete").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}

	return nil
}
