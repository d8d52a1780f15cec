package conversation

import (
	"errors"
	"sync"

	"pizzaiolo/internal/order"

	"github.com/google/uuid"
)

// ErrTurnInFlight is returned when a second turn is started on a session
// whose previous turn has not finished. Callers serialize turns per
// conversation; this is the backstop.
var ErrTurnInFlight = errors.New("conversation: turn already in flight")

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("conversation: session not found")

// Session owns one conversation's state: its append-only history and the
// order being accumulated. Sessions are handed out by a Manager and must not
// be shared across conversations.
type Session struct {
	ID      string
	History []Message
	Order   order.PartialOrder

	busy bool
}

// Append adds a message to the session's history.
func (s *Session) Append(role, content string) {
	s.History = append(s.History, Message{Role: role, Content: content})
}

// Manager tracks live sessions. All methods are safe for concurrent use;
// state within a single session is only touched by its one in-flight turn.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a new conversation with an empty history and order.
func (m *Manager) Create() *Session {
	session := &Session{ID: uuid.NewString()}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return session
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Begin marks a session as having a turn in flight. It fails if one already
// is, enforcing at-most-one-in-flight per conversation.
func (m *Manager) Begin(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.busy {
		return nil, ErrTurnInFlight
	}
	session.busy = true
	return session, nil
}

// End releases a session's in-flight turn.
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[id]; ok {
		session.busy = false
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close removes a finished conversation.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
