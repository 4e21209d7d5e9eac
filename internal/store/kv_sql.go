// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"

	// upsertSuffix is understood by both PostgreSQL and SQLite >= 3.24.
	upsertSuffix = "ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", updated_at = CURRENT_TIMESTAMP"
)

// SQLStore is the [KeyValueStore] backed by the kv_entries table. The same
// queries serve SQLite and PostgreSQL; only the placeholder format differs.
type SQLStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLStore constructs a [SQLStore]. The schema must already be migrated.
func NewSQLStore(db *DB, logger *logger.Logger) *SQLStore {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql key-value store")
	return &SQLStore{
		db:     db,
		logger: logger,
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Err(err).Str("func", "*SQLStore.Get").Str("key", key).Msg("error reading key")
		return "", s.db.wrapError("get "+key, err)
	}

	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*SQLStore.Set").Str("key", key).Msg("error writing key")
		return s.db.wrapError("set "+key, err)
	}

	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*SQLStore.Delete").Str("key", key).Msg("error deleting key")
		return s.db.wrapError("delete "+key, err)
	}

	return nil
}
