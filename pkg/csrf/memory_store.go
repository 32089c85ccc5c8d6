package csrf

import (
	"context"
	"slices"
	"sync"
	"time"
)

type memoryToken struct {
	value     string
	expiresAt time.Time
}

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]memoryToken
	ticker   *time.Ticker
	done     chan struct{}
	stop     sync.Once
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore. A positive cleanupInterval starts a
// goroutine that drops expired tokens; stop it with Close.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string][]memoryToken),
		done:     make(chan struct{}),
		now:      time.Now,
	}

	if cleanupInterval > 0 {
		s.ticker = time.NewTicker(cleanupInterval)
		go s.cleanupLoop()
	}

	return s
}

func (s *MemoryStore) Add(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := validateAdd(sessionID, token, ttl); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(ttl)
	tokens := slices.DeleteFunc(s.sessions[sessionID], func(t memoryToken) bool {
		return t.value == token
	})
	s.sessions[sessionID] = append(tokens, memoryToken{value: token, expiresAt: expiresAt})
	return nil
}

func (s *MemoryStore) Tokens(ctx context.Context, sessionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []string
	for _, t := range s.sessions[sessionID] {
		if now.Before(t.expiresAt) {
			out = append(out, t.value)
		}
	}
	return out, nil
}

func (s *MemoryStore) Remove(ctx context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := slices.DeleteFunc(s.sessions[sessionID], func(t memoryToken) bool {
		return t.value == token
	})
	if len(tokens) == 0 {
		delete(s.sessions, sessionID)
		return nil
	}
	s.sessions[sessionID] = tokens
	return nil
}

// DeleteExpired drops expired tokens and empty sessions.
func (s *MemoryStore) DeleteExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for sid, tokens := range s.sessions {
		tokens = slices.DeleteFunc(tokens, func(t memoryToken) bool {
			return !now.Before(t.expiresAt)
		})
		if len(tokens) == 0 {
			delete(s.sessions, sid)
			continue
		}
		s.sessions[sid] = tokens
	}
	return nil
}

// Len returns the number of sessions holding at least one token.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	if s.ticker != nil {
		s.stop.Do(func() {
			s.ticker.Stop()
			close(s.done)
		})
	}
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-s.ticker.C:
			_ = s.DeleteExpired(context.Background())
		case <-s.done:
			return
		}
	}
}
