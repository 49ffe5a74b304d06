// Package filestore is a file-backed Storage. One file per key,
// human-readable, portable. No locking; fine for a local single-user app.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists each key as <dir>/<key>.json.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created lazily on
// the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

func (s *Store) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(b), true, nil
}

func (s *Store) Set(key, value string) error {
	// ensure the data dir exists with 0700 (owner-only)
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// sanitizeKey keeps keys usable as file names.
func sanitizeKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		valid := (c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '.' || c == '_' || c == '-'
		if valid {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
