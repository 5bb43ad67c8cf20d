package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/repositories/models"
	"github.com/google/uuid"
)

type sessionEntry struct {
	lock      sync.Mutex
	session   *game.Session
	createdAt int64
	changed   bool
}

type InMemoryStateManager struct {
	lock     sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

func (m *InMemoryStateManager) Add(ctx context.Context, gameID uuid.UUID, s *game.Session, createdAt int64) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.sessions[gameID]; ok {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}
	m.sessions[gameID] = &sessionEntry{
		session:   s,
		createdAt: createdAt,
	}
	return nil
}

func (m *InMemoryStateManager) Exists(ctx context.Context, gameID uuid.UUID) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.sessions[gameID]
	return ok
}

func (m *InMemoryStateManager) entry(gameID uuid.UUID) (*sessionEntry, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	e, ok := m.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return e, nil
}

func (m *InMemoryStateManager) Update(ctx context.Context, gameID uuid.UUID, fn func(s *game.Session) error) error {
	e, err := m.entry(gameID)
	if err != nil {
		return err
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	if err := fn(e.session); err != nil {
		return err
	}
	e.changed = true
	return nil
}

func (m *InMemoryStateManager) View(ctx context.Context, gameID uuid.UUID, fn func(s *game.Session) error) error {
	e, err := m.entry(gameID)
	if err != nil {
		return err
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	return fn(e.session)
}

func (m *InMemoryStateManager) Changed(ctx context.Context) ([]*models.Game, error) {
	m.lock.RLock()
	ids := make([]uuid.UUID, 0, len(m.sessions))
	entries := make([]*sessionEntry, 0, len(m.sessions))
	for id, e := range m.sessions {
		ids = append(ids, id)
		entries = append(entries, e)
	}
	m.lock.RUnlock()

	changed := make([]*models.Game, 0)
	for i, e := range entries {
		e.lock.Lock()
		if e.changed {
			changed = append(changed, GameModel(ids[i], e.session, e.createdAt))
			e.changed = false
		}
		e.lock.Unlock()
	}
	return changed, nil
}

func (m *InMemoryStateManager) Remove(ctx context.Context, gameID uuid.UUID) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.sessions[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(m.sessions, gameID)
	return nil
}
