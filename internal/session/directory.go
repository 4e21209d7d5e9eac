package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// RegisterSignup appends record to the directory and persists the whole
// list. Duplicate registration numbers are kept; lookups return the first.
func (s *Store) RegisterSignup(ctx context.Context, record models.SignupRecord) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readSignups(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Store.RegisterSignup").Msg("error reading directory")
		return err
	}
	records = append(records, record)

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode directory: %w", ErrPersist, err)
	}
	if err = s.kv.Set(ctx, SignupsKey, string(raw)); err != nil {
		log.Err(err).Str("func", "*Store.RegisterSignup").Msg("error persisting directory")
		return fmt.Errorf("%w: write %s: %w", ErrPersist, SignupsKey, err)
	}

	log.Info().Str("func", "*Store.RegisterSignup").
		Str("registration_no", record.RegistrationNo).
		Int("directory_size", len(records)).
		Msg("business registered")
	return nil
}

// FindSignup returns the first record whose registration number equals
// regNo exactly. The comparison is case-sensitive and regNo is not trimmed.
func (s *Store) FindSignup(ctx context.Context, regNo string) (models.SignupRecord, bool, error) {
	records, err := s.Signups(ctx)
	if err != nil {
		return models.SignupRecord{}, false, err
	}

	for _, r := range records {
		if r.RegistrationNo == regNo {
			return r, true, nil
		}
	}
	return models.SignupRecord{}, false, nil
}

// LookupBusinessName returns the business name of the first record matching
// regNo.
func (s *Store) LookupBusinessName(ctx context.Context, regNo string) (string, bool, error) {
	r, ok, err := s.FindSignup(ctx, regNo)
	if err != nil || !ok {
		return "", false, err
	}
	return r.BusinessName, true, nil
}

// Signups returns a copy of the directory in registration order.
func (s *Store) Signups(ctx context.Context) ([]models.SignupRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readSignups(ctx)
}

// readSignups must be called with s.mu held. A missing or malformed directory
// reads as empty.
func (s *Store) readSignups(ctx context.Context) ([]models.SignupRecord, error) {
	raw, err := s.kv.Get(ctx, SignupsKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []models.SignupRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrLoad, SignupsKey, err)
	}

	var records []models.SignupRecord
	if err = json.Unmarshal([]byte(raw), &records); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*Store.readSignups").Msg("malformed directory, treating as empty")
		return []models.SignupRecord{}, nil
	}
	if records == nil {
		records = []models.SignupRecord{}
	}

	return records, nil
}
