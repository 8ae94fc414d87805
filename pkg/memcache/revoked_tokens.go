// pkg/memcache/revoked_tokens.go
package memcache

import (
	"sync"
	"time"
)

// RevokedTokenStore records JWTs invalidated by logout. Tokens are otherwise
// stateless, so this is the only way GET /logout can take effect before
// expiry.
type RevokedTokenStore interface {
	// Revoke blacklists token until its natural expiry time.
	Revoke(token string, expiresAt time.Time)

	// IsRevoked reports whether token has been logged out and is still
	// within its lifetime.
	IsRevoked(token string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
	}
}

func (s *RevokedTokens) Revoke(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = expiresAt

	// Opportunistic cleanup: entries past their expiry would be rejected by
	// token validation anyway.
	now := time.Now()
	for t, exp := range s.data {
		if now.After(exp) {
			delete(s.data, t)
		}
	}
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.data[token]
	if !ok {
		return false
	}
	return time.Now().Before(exp)
}
