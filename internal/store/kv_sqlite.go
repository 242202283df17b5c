package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/logger"
)

type sqliteStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteStorage returns a [KeyValueStorage] backed by the kv table of db.
// The schema is expected to be migrated already.
func NewSQLiteStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	return &sqliteStorage{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteStorage) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.Get").Msg("failed to build select query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.Get").Str("key", key).Msg("failed to read value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteStorage) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.Set").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteStorage.Set").Str("key", key).Msg("failed to execute upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStorage) Close() error {
	return s.DB.Close()
}
