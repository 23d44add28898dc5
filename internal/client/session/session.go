// Package session holds the process-wide authenticated identity and
// broadcasts changes to interested consumers.
package session

import (
	"sync"

	"github.com/accessflow/accessflow/internal/core/domain"

	"github.com/accessflow/accessflow/internal/client/credstore"
)

// Session is the current identity: bearer token plus the logged-in user.
type Session struct {
	Token string
	User  domain.User
}

// IsAuthenticated reports whether both halves of the session are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User.ID != 0
}

// IsAdmin reports whether the session's user carries the admin profile.
func (s Session) IsAdmin() bool {
	return s.User.IsAdmin()
}

// Manager owns the session singleton. The only mutations are Start and
// Remove, each a total replacement kept in lockstep with the credential
// store; there is deliberately no partial-update operation.
type Manager struct {
	mu       sync.RWMutex
	store    credstore.Store
	current  Session
	watchers []chan Session
}

// NewManager seeds the session from whatever the credential store holds, so
// an identity survives a restart without a network round-trip.
func NewManager(store credstore.Store) *Manager {
	token, user := store.Get()
	return &Manager{
		store:   store,
		current: Session{Token: token, User: user},
	}
}

// Start replaces the session wholesale. Persistence happens first so the
// in-memory session never runs ahead of the credential store.
func (m *Manager) Start(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(s.Token, s.User); err != nil {
		return err
	}
	m.current = s
	m.notifyLocked(s)
	return nil
}

// Remove resets to the empty session and clears the credential store.
func (m *Manager) Remove() error {
	m.mu.Lock()
	m.current = Session{}
	err := m.store.Clear()
	m.notifyLocked(Session{})
	m.mu.Unlock()
	return err
}

// Current returns the session value as of this read.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) IsAuthenticated() bool {
	return m.Current().IsAuthenticated()
}

func (m *Manager) IsAdmin() bool {
	return m.Current().IsAdmin()
}

// Watch returns a channel receiving every subsequent session replacement.
// Slow consumers miss intermediate values rather than blocking mutations.
func (m *Manager) Watch() <-chan Session {
	ch := make(chan Session, 1)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) notifyLocked(s Session) {
	for _, ch := range m.watchers {
		select {
		case ch <- s:
		default:
			// drop the stale value so the latest one fits
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}
