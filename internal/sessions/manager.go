package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/viniciusmachado/adega-backend/internal/cart"
	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/internal/combo"
	"github.com/viniciusmachado/adega-backend/internal/notifications"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
)

// Session owns one customer's cart and composer for the lifetime of their
// visit. It is created on first touch and torn down explicitly when the
// session ends; nothing here is ambient global state.
type Session struct {
	ID        uuid.UUID
	Cart      *cart.Store
	Composer  *combo.Composer
	CreatedAt time.Time
}

// Manager hands out sessions keyed by id.
type Manager struct {
	mu       sync.Mutex
	policy   enums.DecrementPolicy
	catalog  catalog.Source
	notifier notifications.Notifier
	sessions map[uuid.UUID]*Session
}

// NewManager wires the session factory dependencies.
func NewManager(source catalog.Source, notifier notifications.Notifier, policy enums.DecrementPolicy) (*Manager, error) {
	if source == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog source required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifier required")
	}
	if !policy.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid decrement policy")
	}
	return &Manager{
		policy:   policy,
		catalog:  source,
		notifier: notifier,
		sessions: map[uuid.UUID]*Session{},
	}, nil
}

// GetOrCreate returns the session for the id, creating it when absent. A nil
// id starts a fresh session with a generated id.
func (m *Manager) GetOrCreate(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != uuid.Nil {
		if session, ok := m.sessions[id]; ok {
			return session, nil
		}
	} else {
		id = uuid.New()
	}

	store, err := cart.NewStore(m.policy)
	if err != nil {
		return nil, err
	}
	composer, err := combo.NewComposer(m.catalog, store, m.notifier)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        id,
		Cart:      store,
		Composer:  composer,
		CreatedAt: time.Now().UTC(),
	}
	m.sessions[id] = session
	return session, nil
}

// Get returns the session if it exists.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	return session, ok
}

// End tears the session down. No-op for unknown ids.
func (m *Manager) End(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
