package token

import (
	"sync"
	"time"
)

// RevocationList remembers refresh tokens that were rotated out, keyed by jti,
// until they would have expired on their own.
type RevocationList interface {
	// Revoke reports whether jti was newly revoked. Checking and marking happen
	// as one step, so only one of two concurrent callers gets true.
	Revoke(jti string, expiresAt time.Time) (bool, error)
	IsRevoked(jti string) bool
	// Purge forgets entries whose token expired before now and reports how many went.
	Purge(now time.Time) int
}

type memoryRevocations struct {
	expiries map[string]time.Time
	mu       sync.RWMutex
}

var _ RevocationList = (*memoryRevocations)(nil)

func NewMemoryRevocationList() RevocationList {
	return &memoryRevocations{expiries: make(map[string]time.Time)}
}

func (l *memoryRevocations) Revoke(jti string, expiresAt time.Time) (bool, error) {
	if jti == "" {
		return false, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.expiries[jti]; ok {
		return false, nil
	}
	l.expiries[jti] = expiresAt
	return true, nil
}

func (l *memoryRevocations) IsRevoked(jti string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.expiries[jti]
	return ok
}

func (l *memoryRevocations) Purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	purged := 0
	for jti, expiresAt := range l.expiries {
		if expiresAt.Before(now) {
			delete(l.expiries, jti)
			purged++
		}
	}
	return purged
}
