package lucro

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
)

// Storage persists opaque records by key.
//
// Read returns an error wrapping fs.ErrNotExist when the key was never written.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// Well known storage keys.
const (
	SessionKey     = "session"
	CredentialsKey = "users"
)

// DataKey is the storage key of the ledger of a user.
func DataKey(userID string) string { return "data-" + userID }

// LoadLedger returns the ledger persisted for userID.
//
// It never fails: a missing record gives an empty ledger, and an unreadable
// one is logged and replaced by an empty ledger too.
func LoadLedger(st Storage, userID string, log zerolog.Logger) *Ledger {
	data, err := st.Read(DataKey(userID))
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("user", userID).Msg("no ledger yet, starting empty")
		return NewLedger()
	}
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("could not read ledger, starting empty")
		return NewLedger()
	}
	l, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("corrupt ledger, starting empty")
		return NewLedger()
	}
	return l
}

// SaveLedger overwrites the ledger persisted for userID with l.
func SaveLedger(st Storage, userID string, l *Ledger) error {
	if userID == "" {
		return fmt.Errorf("cannot save ledger with an empty user id")
	}
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}
	if err := st.Write(DataKey(userID), buf.Bytes()); err != nil {
		return fmt.Errorf("could not write ledger of %q: %w", userID, err)
	}
	return nil
}
