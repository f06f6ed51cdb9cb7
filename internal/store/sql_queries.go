package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session"

	// tokenKey is the single canonical key of the credential token.
	tokenKey = "auth_token"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectTokenQuery() (string, []any, error) {
	return psql.
		Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": tokenKey}).
		ToSql()
}

// buildUpsertTokenQuery inserts the token or overwrites the existing row.
func buildUpsertTokenQuery(token string, now time.Time) (string, []any, error) {
	return psql.
		Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(tokenKey, token, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteTokenQuery() (string, []any, error) {
	return psql.
		Delete(sessionTable).
		Where(sq.Eq{"key": tokenKey}).
		ToSql()
}
