package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const ext = ".json"

// Dir stores each record as a file <key>.json in a folder.
type Dir struct {
	path string
}

// NewDir returns the storage in path, creating the folder if needed.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path is the folder holding the records.
func (d *Dir) Path() string { return d.path }

func (d *Dir) file(key string) string { return filepath.Join(d.path, key+ext) }

// Read returns the content of the record. A record never written gives an
// error wrapping fs.ErrNotExist.
func (d *Dir) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.file(key))
	if err != nil {
		return nil, fmt.Errorf("could not read record %q: %w", key, err)
	}
	return data, nil
}

// Write replaces the record atomically: a crash leaves either the previous
// or the new content, never a truncated file.
func (d *Dir) Write(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.path, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write record %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write record %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), d.file(key)); err != nil {
		return fmt.Errorf("could not replace record %q: %w", key, err)
	}
	return nil
}

// Delete removes the record. Deleting a missing record is not an error.
func (d *Dir) Delete(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.Remove(d.file(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete record %q: %w", key, err)
	}
	return nil
}

// Close does nothing, files are closed after each operation.
func (d *Dir) Close() error { return nil }
