package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-audit/internal/config"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
)

// Storages groups the storage backends used by the service layer and owns
// the resources they hold.
type Storages struct {
	// KeyValue persists the session flag, the profile and the signup
	// directory.
	KeyValue KeyValueStore

	closers []func() error
}

// NewStorages initialises the backend selected by cfg.Driver. SQL backends
// are connected, pinged and migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.DriverMemory:
		return &Storages{KeyValue: NewMemoryStore()}, nil

	case config.DriverFile:
		fs, err := NewFileStore(cfg.File.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return &Storages{KeyValue: fs}, nil

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return newSQLStorages(db, logger)

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return newSQLStorages(db, logger)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

func newSQLStorages(db *DB, logger *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		KeyValue: NewSQLStore(db, logger),
		closers:  []func() error{db.Close},
	}, nil
}

// Close releases every held resource.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
