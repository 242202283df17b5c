// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// fileStorage keeps all keys in one JSON document on disk. The document is
// read once on open and rewritten in full on every Set.
type fileStorage struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	values map[string]string
}

// NewFileStorage opens (or prepares to create) the JSON document at path.
// A missing file is an empty storage; an undecodable one is an error.
func NewFileStorage(path string, log *logger.Logger) (KeyValueStorage, error) {
	s := &fileStorage{
		path:   path,
		logger: log,
		values: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var values map[string]string
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode storage file: %w", err)
	}
	if values != nil {
		s.values = values
	}

	return nil
}

func (s *fileStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set writes the updated document to disk before committing it to memory, so
// a failed write leaves both the file and the cached values unchanged.
func (s *fileStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.values)
	next[key] = value

	if err := s.persist(next); err != nil {
		s.logger.Err(err).Str("func", "fileStorage.Set").Str("key", key).Msg("error writing storage file")
		return err
	}

	s.values = next
	return nil
}

// persist replaces the document atomically: temp file in the same directory,
// fsync, rename.
func (s *fileStorage) persist(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp storage file: %w", err)
	}
	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	return nil
}

func (s *fileStorage) Close() error {
	return nil
}
