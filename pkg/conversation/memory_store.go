package conversation

import (
	"context"
	"sync"
	"time"

	"GlamoraBackend/pkg/intent"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultSessionTTL = 24 * time.Hour

type memoryStore struct {
	mu       sync.Mutex
	sessions *gocache.Cache
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore keeps contexts in process memory. A context expires ttl after
// its last access, so idle sessions do not accumulate.
func NewMemoryStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &memoryStore{
		sessions: gocache.New(ttl, ttl/2),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *memoryStore) Get(_ context.Context, sessionID string) (*Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.load(sessionID).Clone(), nil
}

func (m *memoryStore) Update(_ context.Context, sessionID string, in intent.Intent, query string, preferences ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	convo := m.load(sessionID)
	convo.apply(in, query, preferences, m.now())
	m.sessions.Set(sessionID, convo, m.ttl)

	return nil
}

func (m *memoryStore) Delete(_ context.Context, sessionID string) error {
	m.sessions.Delete(sessionID)
	return nil
}

func (m *memoryStore) Exists(_ context.Context, sessionID string) (bool, error) {
	_, ok := m.sessions.Get(sessionID)
	return ok, nil
}

// load returns the live context for sessionID, creating it when absent and
// sliding its expiry. Callers hold m.mu.
func (m *memoryStore) load(sessionID string) *Context {
	if raw, ok := m.sessions.Get(sessionID); ok {
		convo := raw.(*Context)
		m.sessions.Set(sessionID, convo, m.ttl)
		return convo
	}

	convo := newContext(sessionID, m.now())
	m.sessions.Set(sessionID, convo, m.ttl)
	return convo
}
