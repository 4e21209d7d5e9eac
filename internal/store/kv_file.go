// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
)

// FileStore keeps every key in a single JSON document on disk. The document
// is rewritten through a temporary file and a rename, so a crash mid-write
// leaves the previous version intact.
type FileStore struct {
	path   string
	logger *logger.Logger

	mu   sync.RWMutex
	data map[string]string
}

const corruptSuffix = ".corrupt"

type filePersistedState struct {
	Entries map[string]string `json:"entries"`
}

// NewFileStore opens the document at path, creating nothing until the first
// write. A missing file is an empty store. A malformed one is moved aside to
// path + ".corrupt" and the store starts empty; an unreadable one is an error.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		logger: log,
		data:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	log.Debug().Str("func", "NewFileStore").Str("path", path).Int("keys", len(s.data)).Msg("file store opened")
	return s, nil
}

func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, existed := s.data[key]
	s.data[key] = value

	if err := s.persist(); err != nil {
		if existed {
			s.data[key] = old
		} else {
			delete(s.data, key)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*FileStore.Set").Str("key", key).Msg("error persisting file store")
		return err
	}

	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, existed := s.data[key]
	if !existed {
		return nil
	}
	delete(s.data, key)

	if err := s.persist(); err != nil {
		s.data[key] = old
		logger.FromContext(ctx).Err(err).Str("func", "*FileStore.Delete").Str("key", key).Msg("error persisting file store")
		return err
	}

	return nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return s.quarantine(err)
	}

	if st.Entries != nil {
		s.data = st.Entries
	}

	return nil
}

// quarantine moves a malformed document out of the way so it can be
// inspected later, leaving the store empty.
func (s *FileStore) quarantine(decodeErr error) error {
	aside := s.path + corruptSuffix
	if err := os.Rename(s.path, aside); err != nil {
		return fmt.Errorf("decode local storage file: %w (move aside: %w)", decodeErr, err)
	}

	s.logger.Warn().Err(decodeErr).
		Str("func", "*FileStore.quarantine").
		Str("moved_to", aside).
		Msg("malformed local storage file, starting empty")
	return nil
}

// persist must be called with s.mu held.
func (s *FileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create local storage dir: %w", ErrStoreUnavailable, err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Entries: s.data}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write local storage file: %w", ErrStoreUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close local storage file: %w", ErrStoreUnavailable, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod local storage file: %w", ErrStoreUnavailable, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace local storage file: %w", ErrStoreUnavailable, err)
	}

	return nil
}
