package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSessionTTL is how long an idle session keeps its cart before the
	// janitor reaps it. Carts are session-only: nothing survives a reap.
	DefaultSessionTTL = 2 * time.Hour

	// cleanupInterval is how often the background janitor runs.
	cleanupInterval = 1 * time.Minute
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager owns one cart store per shopping session, keyed by an opaque token
// issued on first contact. Idle sessions are dropped by a background janitor;
// there is deliberately no persistence across sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewManager creates a session manager and starts its janitor goroutine.
// A non-positive ttl falls back to DefaultSessionTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	m := &Manager{
		sessions: make(map[string]*session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.reapIdle(time.Now())
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) reapIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > m.ttl {
			delete(m.sessions, token)
		}
	}
}

// Create issues a new session token with an empty cart store.
func (m *Manager) Create() (string, *Store) {
	token := uuid.NewString()
	store := NewStore()

	m.mu.Lock()
	m.sessions[token] = &session{store: store, lastSeen: time.Now()}
	m.mu.Unlock()

	return token, store
}

// Get returns the cart store for a session token and refreshes its idle
// timer. The second return value is false for unknown or expired tokens.
func (m *Manager) Get(token string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess.store, true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the janitor and waits for it to exit. Sessions are not flushed
// anywhere: cart state is in-memory only.
func (m *Manager) Close() {
	close(m.stop)
	m.wg.Wait()
}
