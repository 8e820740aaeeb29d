// Package auth registers local users and keeps track of the connected one.
//
// Credentials are kept in a single storage record as bcrypt hashes, the
// connected user is kept in the session record.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/etnz/lucro"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength and MinPhoneDigits bound the accepted registrations.
const (
	MinPasswordLength = 4
	MinPhoneDigits    = 10
)

var (
	ErrMissingField   = errors.New("Preencha todos os campos!")
	ErrInvalidPhone   = errors.New("Celular inválido! Digite com DDD.")
	ErrShortPassword  = errors.New("Senha deve ter no mínimo 4 caracteres!")
	ErrPhoneTaken     = errors.New("Já existe uma conta com esse celular!")
	ErrBadCredentials = errors.New("Celular ou senha incorretos!")
	ErrNoSession      = lucro.ErrNoSession
)

// Credential is the stored form of a registered user.
type Credential struct {
	lucro.Identity
	PasswordHash []byte `json:"passwordHash"`
}

// Registration is the form filled to create an account.
type Registration struct {
	Name         string
	BusinessName string
	Phone        string
	Password     string
}

// Manager registers users and opens or closes the session.
type Manager struct {
	storage lucro.Storage
	log     zerolog.Logger
	cost    int
	now     func() time.Time
	newID   func() string
}

// NewManager returns a Manager persisting to st. A cost outside bcrypt
// bounds falls back to bcrypt.DefaultCost.
func NewManager(st lucro.Storage, log zerolog.Logger, cost int) *Manager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Manager{
		storage: st,
		log:     log,
		cost:    cost,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// NormalizePhone keeps only the ASCII digits of a phone number.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if '0' <= r && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// Register creates an account and connects it.
func (m *Manager) Register(r Registration) (*lucro.Session, error) {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.BusinessName) == "" || r.Phone == "" || r.Password == "" {
		return nil, ErrMissingField
	}
	phone := NormalizePhone(r.Phone)
	if len(phone) < MinPhoneDigits {
		return nil, ErrInvalidPhone
	}
	if len(r.Password) < MinPasswordLength {
		return nil, ErrShortPassword
	}

	creds, err := m.credentials()
	if err != nil {
		return nil, err
	}
	for _, c := range creds {
		if c.Phone == phone {
			return nil, ErrPhoneTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), m.cost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}
	c := Credential{
		Identity: lucro.Identity{
			ID:           m.newID(),
			Name:         strings.TrimSpace(r.Name),
			BusinessName: strings.TrimSpace(r.BusinessName),
			Phone:        phone,
			RegisteredAt: m.now(),
		},
		PasswordHash: hash,
	}
	if err := m.writeJSON(lucro.CredentialsKey, append(creds, c)); err != nil {
		return nil, err
	}
	m.log.Info().Str("user", c.ID).Msg("user registered")
	return m.open(c.Identity)
}

// Login connects the user registered with this phone and password.
func (m *Manager) Login(phone, password string) (*lucro.Session, error) {
	creds, err := m.credentials()
	if err != nil {
		return nil, err
	}
	phone = NormalizePhone(phone)
	for _, c := range creds {
		if c.Phone != phone {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) != nil {
			break
		}
		return m.open(c.Identity)
	}
	m.log.Warn().Str("phone", phone).Msg("login failed")
	return nil, ErrBadCredentials
}

// Logout closes the current session, if any.
func (m *Manager) Logout() error {
	if err := m.storage.Delete(lucro.SessionKey); err != nil {
		return fmt.Errorf("could not close session: %w", err)
	}
	return nil
}

// Current returns the open session, or ErrNoSession.
func (m *Manager) Current() (*lucro.Session, error) {
	data, err := m.storage.Read(lucro.SessionKey)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("could not read session: %w", err)
	}
	s := new(lucro.Session)
	if err := json.Unmarshal(data, s); err != nil || s.UserID() == "" {
		m.log.Error().Err(err).Msg("unreadable session, ignoring it")
		return nil, ErrNoSession
	}
	return s, nil
}

// Users lists the registered identities.
func (m *Manager) Users() ([]lucro.Identity, error) {
	creds, err := m.credentials()
	if err != nil {
		return nil, err
	}
	ids := make([]lucro.Identity, len(creds))
	for i, c := range creds {
		ids[i] = c.Identity
	}
	return ids, nil
}

func (m *Manager) open(id lucro.Identity) (*lucro.Session, error) {
	s := &lucro.Session{Identity: id, Started: m.now()}
	if err := m.writeJSON(lucro.SessionKey, s); err != nil {
		return nil, err
	}
	return s, nil
}

// credentials reads the registered users, none when the record is missing.
func (m *Manager) credentials() ([]Credential, error) {
	data, err := m.storage.Read(lucro.CredentialsKey)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read credentials: %w", err)
	}
	var creds []Credential
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("could not decode credentials: %w", err)
	}
	return creds, nil
}

func (m *Manager) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", key, err)
	}
	if err := m.storage.Write(key, data); err != nil {
		return fmt.Errorf("could not write %s: %w", key, err)
	}
	return nil
}
