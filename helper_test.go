package lucro

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/rs/zerolog"
)

// memStorage is an in-memory Storage.
type memStorage struct {
	records map[string][]byte
	fail    error // returned by Write when set
}

func newMemStorage() *memStorage { return &memStorage{records: make(map[string][]byte)} }

func (m *memStorage) Read(key string) ([]byte, error) {
	data, ok := m.records[key]
	if !ok {
		return nil, fmt.Errorf("record %q: %w", key, fs.ErrNotExist)
	}
	return data, nil
}

func (m *memStorage) Write(key string, data []byte) error {
	if m.fail != nil {
		return m.fail
	}
	m.records[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStorage) Delete(key string) error {
	delete(m.records, key)
	return nil
}

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// BRL is a helper for test to create money from const.
func BRL(v float64) Money { return M(v) }

var testSession = &Session{Identity: Identity{ID: "u1", Name: "Ana", BusinessName: "Doces da Ana", Phone: "11999998888"}}

// newTestStore opens a store on an in-memory storage with a fixed clock and
// sequential ids.
func newTestStore(now time.Time) (*Store, *memStorage, *clock) {
	st := newMemStorage()
	c := &clock{t: now}
	s, err := Open(st, testSession, zerolog.Nop())
	if err != nil {
		panic(err)
	}
	s.now = c.Now
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
	return s, st, c
}
