// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newTestTokenRepo(t *testing.T) (*tokenRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &tokenRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func TestTokenRepository_Get(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM session WHERE key = ?")).
		WithArgs("auth_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok-1"))

	token, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	mock.ExpectQuery("SELECT value FROM session").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, ErrTokenNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Get_DBError(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	mock.ExpectQuery("SELECT value FROM session").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedDB)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestTokenRepository_Save(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key)")).
		WithArgs("auth_token", "tok-2", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), "  tok-2 ")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Save_Empty(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	err := repo.Save(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Save_DBError(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	mock.ExpectExec("INSERT INTO session").
		WillReturnError(errors.New("database is locked"))

	err := repo.Save(context.Background(), "tok")

	assert.ErrorIs(t, err, ErrUnexpectedDB)
}

func TestTokenRepository_Delete(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session WHERE key = ?")).
		WithArgs("auth_token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Delete_DBError(t *testing.T) {
	repo, mock := newTestTokenRepo(t)

	mock.ExpectExec("DELETE FROM session").
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, repo.Delete(context.Background()), ErrUnexpectedDB)
}

func TestNewTokenRepository_UsesWallClock(t *testing.T) {
	repo := NewTokenRepository(&DB{}, logger.Nop()).(*tokenRepository)

	require.NotNil(t, repo.now)
	assert.WithinDuration(t, time.Now(), repo.now(), time.Minute)
}
