package jsonstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"dispatch/internal/pkg/errs"
)

// Store is the main document store holding users, orders, and the order id
// counter. A single mutex serializes all writes; see the package comment for
// the locking discipline.
type Store struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewStore opens the store at path, creating an empty document (with the id
// counter at 1) if the file does not exist yet.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		logger: logger.With("component", "jsonstore"),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.NewStorageError("create store directory", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if writeErr := s.write(newDocument()); writeErr != nil {
			return nil, writeErr
		}
		s.logger.Info("created new store file", "path", path)
	} else if err != nil {
		return nil, errs.NewStorageError("stat store file", err)
	}

	return s, nil
}

// read loads and decodes the full document. Callers that intend to modify it
// must hold s.mu.
func (s *Store) read() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return document{}, errs.NewStorageError("read store", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document{}, errs.NewStorageError("decode store", err)
	}
	if doc.NextOrderID < 1 {
		doc.NextOrderID = 1
	}
	return doc, nil
}

// write encodes and rewrites the full document. The write goes to a temp
// file first and is moved into place, so a crash mid-write leaves the
// previous document intact.
func (s *Store) write(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errs.NewStorageError("encode store", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errs.NewStorageError("write store", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errs.NewStorageError("replace store", err)
	}
	return nil
}

// snapshot loads the document without taking the write lock.
func (s *Store) snapshot() (document, error) {
	return s.read()
}
