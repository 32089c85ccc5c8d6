package csrf

import "time"

func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *RedisStore) SetClock(now func() time.Time) { s.now = now }

func (s *PostgresStore) SetClock(now func() time.Time) { s.now = now }
