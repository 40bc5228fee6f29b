// Package session holds the client's authentication state and the role-based
// guard that gates access to views. The credential check is a deliberately
// simple fixed-table match so a real verifier can be swapped in later behind
// the same Verifier interface.
package session

import (
	"github.com/google/uuid"

	"github.com/fabienvalero1/userdir/internal/common"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Session is the client's current authentication state. The zero value is
// the logged-out state.
type Session struct {
	Authenticated bool
	Role          Role
	ID            string
}

// View is a navigation target annotated with the roles allowed to see it.
type View struct {
	Name  string
	Roles []Role
}

// Decision is the guard's verdict for a navigation attempt.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login entry point.
	RedirectLogin
	// RedirectForbidden sends an authenticated visitor without a permitted
	// role to the denied view.
	RedirectForbidden
)

// Manager owns the Session and answers login, logout, and authorization
// requests. It is the only writer of the session state.
type Manager struct {
	verifier Verifier
	current  Session
}

func NewManager(v Verifier) *Manager {
	return &Manager{verifier: v}
}

// Login checks the claimed identifier and secret against the verifier.
// On success the session becomes authenticated with the matched role and a
// fresh session id. On failure the session is reset and a single generic
// error comes back, regardless of which field was wrong.
func (m *Manager) Login(username, password string) error {
	role, ok := m.verifier.Verify(username, password)
	if !ok {
		m.current = Session{}
		return common.ErrInvalidCredentials
	}

	m.current = Session{
		Authenticated: true,
		Role:          role,
		ID:            uuid.NewString(),
	}
	return nil
}

// Logout unconditionally clears the session.
func (m *Manager) Logout() {
	m.current = Session{}
}

// Current returns a copy of the session state.
func (m *Manager) Current() Session {
	return m.current
}

// Authorize decides whether the current session may render the view.
// Evaluated synchronously on every navigation; holds no state of its own.
func (m *Manager) Authorize(v View) Decision {
	if !m.current.Authenticated {
		return RedirectLogin
	}

	allowed := make(map[Role]struct{}, len(v.Roles))
	for _, r := range v.Roles {
		allowed[r] = struct{}{}
	}
	if _, ok := allowed[m.current.Role]; !ok {
		return RedirectForbidden
	}
	return Allow
}
