package questionnaires

import (
	"sync"
	"time"
)

// SessionStore is the in-memory registry of live sessions. Sessions are
// ephemeral by design: graph state is rebuilt from the assessment plus the
// Redis resume pointer, so losing the store on restart only costs the
// answers of sessions that were never saved.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *SessionStore) Put(session *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session
}

// Get returns the session and refreshes its idle clock, or nil when the
// session does not exist or sat idle past the TTL.
func (st *SessionStore) Get(sessionID string) *Session {
	st.mu.RLock()
	session := st.sessions[sessionID]
	st.mu.RUnlock()
	if session == nil {
		return nil
	}

	if st.ttl > 0 && time.Since(session.lastAccessedAt()) > st.ttl {
		st.Delete(sessionID)
		return nil
	}
	session.Touch()
	return session
}

func (st *SessionStore) Delete(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionID)
}

// Sweep drops every session idle past the TTL. Wired to a background
// ticker at bootstrap.
func (st *SessionStore) Sweep() {
	if st.ttl <= 0 {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, session := range st.sessions {
		if time.Since(session.lastAccessedAt()) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
