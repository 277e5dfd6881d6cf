// Package store persists JSON documents at fixed paths inside the output directory.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentStore = (*Store)(nil)

// Store implements ports.DocumentStore on the local filesystem.
// Every Put is a full overwrite, never an append.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Put serializes v with two-space indentation and writes it to path.
func (s *Store) Put(path string, v any) error {
	path = filepath.Clean(path)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal document"), "path", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for document"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write document"), "path", path)
	}

	return nil
}

// Get decodes the document at path into v.
func (s *Store) Get(path string, v any) error {
	path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read document"), "path", path)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal document"), "path", path)
	}

	return nil
}
