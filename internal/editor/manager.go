package editor

import "sync"

// Manager tracks edit sessions keyed by extraction result id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Session returns the session for resultID, creating one from seed when no
// session is open yet. seed runs without the manager lock held only on the
// miss path; it typically loads the result from history.
func (m *Manager) Session(resultID string, seed func() (*Session, error)) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[resultID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	s, err := seed()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// another caller may have seeded concurrently; keep the first one
	if existing, ok := m.sessions[resultID]; ok {
		return existing, nil
	}
	m.sessions[resultID] = s
	return s, nil
}

// Peek returns the session for resultID without creating one.
func (m *Manager) Peek(resultID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[resultID]
	return s, ok
}

// Drop discards the session for resultID, if any.
func (m *Manager) Drop(resultID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, resultID)
}
