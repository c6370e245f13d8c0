package questionnaires

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	t.Run("Put and Get", func(t *testing.T) {
		store := NewSessionStore(time.Minute)
		session := newBranchingSession()
		store.Put(session)

		got := store.Get(session.ID)
		require.NotNil(t, got)
		assert.Equal(t, session.ID, got.ID)

		assert.Nil(t, store.Get("unknown"))
	})

	t.Run("Delete", func(t *testing.T) {
		store := NewSessionStore(time.Minute)
		session := newBranchingSession()
		store.Put(session)

		store.Delete(session.ID)
		assert.Nil(t, store.Get(session.ID))
	})

	t.Run("Idle sessions expire", func(t *testing.T) {
		store := NewSessionStore(time.Millisecond)
		session := newBranchingSession()
		store.Put(session)

		time.Sleep(5 * time.Millisecond)
		assert.Nil(t, store.Get(session.ID))
	})

	t.Run("Sweep drops idle sessions", func(t *testing.T) {
		store := NewSessionStore(time.Millisecond)
		session := newBranchingSession()
		store.Put(session)

		time.Sleep(5 * time.Millisecond)
		store.Sweep()

		store.mu.RLock()
		defer store.mu.RUnlock()
		assert.Empty(t, store.sessions)
	})

	t.Run("Zero TTL disables expiry", func(t *testing.T) {
		store := NewSessionStore(0)
		session := newBranchingSession()
		store.Put(session)

		time.Sleep(2 * time.Millisecond)
		store.Sweep()
		assert.NotNil(t, store.Get(session.ID))
	})
}
