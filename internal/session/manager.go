package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager: in-memory реестр сессий по случайному идентификатору.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewManager создаёт реестр. ttl <= 0: сессии не истекают.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create открывает новую сессию с пустой корзиной.
func (m *Manager) Create(userID int64, username string) *Session {
	now := m.now()
	s := &Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: username,
		lastSeen: now,
	}
	m.mu.Lock()
	m.sweepLocked(now)
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get возвращает живую сессию и продлевает её.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	now := m.now()
	if m.expired(s, now) {
		m.Delete(id)
		return nil, false
	}
	s.touch(now)
	return s, true
}

// Delete сбрасывает и забывает сессию.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Reset()
	}
}

// Len: число активных сессий.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && s.idleSince(now) > m.ttl
}

func (m *Manager) sweepLocked(now time.Time) {
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
		}
	}
}
