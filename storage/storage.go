// Package storage implements the key/value persistence of lucro ledgers,
// sessions and credentials.
//
// Two backends are available: Dir keeps one JSON file per key in a folder,
// human readable and easy to back up, and SQL keeps every record in a single
// SQLite database.
package storage

import (
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	FileBackend   = "file"
	SQLiteBackend = "sqlite"
)

// Open returns the storage of the named backend rooted in dataDir.
func Open(backend, dataDir string) (Closer, error) {
	switch strings.ToLower(backend) {
	case "", FileBackend:
		d, err := NewDir(dataDir)
		if err != nil {
			return nil, err
		}
		return d, nil
	case SQLiteBackend:
		s, err := OpenSQL(dataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q, want %q or %q", backend, FileBackend, SQLiteBackend)
	}
}

// Closer is a storage holding resources to release.
type Closer interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
	Close() error
}

// validKey rejects keys that could escape the storage or collide once
// mapped to a file name.
func validKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty storage key")
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("invalid storage key %q: unexpected %q", key, r)
		}
	}
	return nil
}
