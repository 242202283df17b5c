package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable         = "kv"
	kvKeyColumn     = "key"
	kvValueColumn   = "value"
	kvUpdatedColumn = "updated_at"
)

// buildGetValueQuery returns SELECT value FROM kv WHERE key = ?.
func buildGetValueQuery(key string) (string, []any, error) {
	return sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildUpsertQuery returns a single INSERT ... ON CONFLICT statement, so each
// key is replaced atomically.
func buildUpsertQuery(key, value string) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedColumn).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedColumn + " = excluded." + kvUpdatedColumn).
		ToSql()
}
