// Package session holds the client's authentication state. The store is
// injected into the Transport so it can be swapped for a test double.
package session

import "sync"

// Roles recognized by the backend.
const (
	RoleCustomer      = "customer"
	RoleFacilityOwner = "facility-owner"
	RoleAdministrator = "administrator"
)

// Session is the persisted client identity. A zero value means the client
// is unauthenticated; requests are still sent, just without auth headers.
type Session struct {
	AuthToken string
	UserID    string
	UserRole  string
	UserEmail string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool { return s.AuthToken != "" }

// Store is the session state accessed by the Transport on every request.
// Snapshot must return a consistent view; Clear wipes all fields at once.
type Store interface {
	Snapshot() Session
	Set(Session)
	Clear()
}

// MemoryStore is the default in-process Store.
type MemoryStore struct {
	mu  sync.RWMutex
	cur Session
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Snapshot returns the current session by value.
func (m *MemoryStore) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Set replaces the session wholesale. Partial writes are not supported;
// login, registration and logout each install a complete session.
func (m *MemoryStore) Set(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = s
}

// Clear wipes the session. Called on logout and on a 401 response.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = Session{}
}
