package lucro

import (
	"errors"
	"time"
)

// ErrNoSession is returned when an operation needs an authenticated user.
var ErrNoSession = errors.New("nenhum usuário conectado")

// Identity is a locally registered user. It never holds credential material.
type Identity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Session is the authenticated identity a Store is scoped to.
//
// It is created at login and destroyed at logout.
type Session struct {
	Identity Identity  `json:"identity"`
	Started  time.Time `json:"started"`
}

// UserID returns the identity id, or "" for a nil session.
func (s *Session) UserID() string {
	if s == nil {
		return ""
	}
	return s.Identity.ID
}
