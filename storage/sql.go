package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DatabaseFile is the name of the SQLite database in the data directory.
const DatabaseFile = "lucro.db"

// record is the table row of a stored value.
type record struct {
	Key       string `gorm:"primaryKey;column:record_key"`
	Value     []byte
	UpdatedAt time.Time
}

// SQL stores records in a SQLite database.
type SQL struct {
	db *gorm.DB
}

// OpenSQL opens, or creates, the database in dataDir.
func OpenSQL(dataDir string) (*SQL, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	return openSQL(sqlite.Open(filepath.Join(dataDir, DatabaseFile)))
}

func openSQL(dialector gorm.Dialector) (*SQL, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	// A single writer keeps SQLite away from "database is locked".
	sqlDB.SetMaxOpenConns(1)
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &SQL{db: db}, nil
}

// Read returns the value of the record. A record never written gives an
// error wrapping fs.ErrNotExist.
func (s *SQL) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	var r record
	err := s.db.Where("record_key = ?", key).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("record %q: %w", key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read record %q: %w", key, err)
	}
	return r.Value, nil
}

// Write inserts or replaces the record.
func (s *SQL) Write(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	r := record{Key: key, Value: data, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&r).Error
	if err != nil {
		return fmt.Errorf("could not write record %q: %w", key, err)
	}
	return nil
}

// Delete removes the record. Deleting a missing record is not an error.
func (s *SQL) Delete(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := s.db.Where("record_key = ?", key).Delete(&record{}).Error; err != nil {
		return fmt.Errorf("could not delete record %q: %w", key, err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
