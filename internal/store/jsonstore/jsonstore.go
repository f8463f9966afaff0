package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed key/value storage. Single file, human-readable, portable.
// Each key maps to one JSON object: {"theme": {"name": "Dark"}}.
// No locking; every caller runs on the UI goroutine.

var (
	// ErrNotFound is returned by Get when the key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt wraps decode failures of the whole document.
	ErrCorrupt = errors.New("corrupt document")
)

type Store struct {
	path string
}

func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Exists reports whether key is present. A missing file means no keys.
func (s *Store) Exists(key string) (bool, error) {
	doc, err := s.load()
	if err != nil {
		return false, err
	}
	_, ok := doc[key]
	return ok, nil
}

// Get decodes the object stored under key into v.
func (s *Store) Get(key string, v any) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	raw, ok := doc[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("json unmarshal %q: %w", key, err)
	}
	return nil
}

// Put replaces the object stored under key, keeping every other key.
// A document that no longer decodes is replaced by one holding only key.
func (s *Store) Put(key string, v any) error {
	doc, err := s.load()
	if errors.Is(err, ErrCorrupt) {
		doc = map[string]json.RawMessage{}
	} else if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal %q: %w", key, err)
	}
	doc[key] = raw
	return s.save(doc)
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if len(b) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return doc, nil
}

func (s *Store) save(doc map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	// write to a sibling temp file so a crash never leaves half a document
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
