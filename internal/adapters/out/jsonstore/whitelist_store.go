package jsonstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// WhitelistStore persists the dynamic authorization whitelist in its own
// JSON document, with the same read-modify-rewrite discipline as the main
// store but under its own lock.
type WhitelistStore struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewWhitelistStore opens the whitelist store at path, creating an empty
// document if the file does not exist yet.
func NewWhitelistStore(path string, logger *slog.Logger) (*WhitelistStore, error) {
	s := &WhitelistStore{
		path:   path,
		logger: logger.With("component", "whitelist_store"),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.NewStorageError("create whitelist directory", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if writeErr := s.write(newWhitelistDocument()); writeErr != nil {
			return nil, writeErr
		}
		s.logger.Info("created new whitelist file", "path", path)
	} else if err != nil {
		return nil, errs.NewStorageError("stat whitelist file", err)
	}

	return s, nil
}

// Add inserts the id with the given timestamp. Adding a present id is a
// no-op success.
func (s *WhitelistStore) Add(_ context.Context, id kernel.UserID, addedAt string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	for _, entry := range doc.Users {
		if entry.ID == id.Int64() {
			return nil
		}
	}

	doc.Users = append(doc.Users, whitelistEntryDTO{ID: id.Int64(), AddedAt: addedAt})
	return s.write(doc)
}

// Remove deletes the id, reporting via the flag whether it was present.
func (s *WhitelistStore) Remove(_ context.Context, id kernel.UserID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return false, err
	}

	for i, entry := range doc.Users {
		if entry.ID == id.Int64() {
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
			return true, s.write(doc)
		}
	}
	return false, nil
}

// Contains reports whether the id is a member.
func (s *WhitelistStore) Contains(_ context.Context, id kernel.UserID) (bool, error) {
	doc, err := s.read()
	if err != nil {
		return false, err
	}

	for _, entry := range doc.Users {
		if entry.ID == id.Int64() {
			return true, nil
		}
	}
	return false, nil
}

// List returns all entries ordered as stored.
func (s *WhitelistStore) List(_ context.Context) ([]ports.WhitelistEntry, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	entries := make([]ports.WhitelistEntry, 0, len(doc.Users))
	for _, dto := range doc.Users {
		id, idErr := kernel.NewUserID(dto.ID)
		if idErr != nil {
			return nil, idErr
		}
		entries = append(entries, ports.WhitelistEntry{ID: id, AddedAt: dto.AddedAt})
	}
	return entries, nil
}

func (s *WhitelistStore) read() (whitelistDocument, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return whitelistDocument{}, errs.NewStorageError("read whitelist", err)
	}

	var doc whitelistDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return whitelistDocument{}, errs.NewStorageError("decode whitelist", err)
	}
	return doc, nil
}

func (s *WhitelistStore) write(doc whitelistDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errs.NewStorageError("encode whitelist", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errs.NewStorageError("write whitelist", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errs.NewStorageError("replace whitelist", err)
	}
	return nil
}
