package auth

import (
	"sync"
	"time"

	"staybook/internal/utils"

	"github.com/go-redis/redis"
)

// Blacklist tracks revoked token ids so logout actually invalidates the
// bearer token. Backed by Redis when configured; otherwise an in-process
// map (sufficient for a single instance).
type Blacklist struct {
	client *redis.Client

	mu    sync.Mutex
	local map[string]time.Time
}

func NewBlacklist(redisAddr string) *Blacklist {
	bl := &Blacklist{local: map[string]time.Time{}}
	if redisAddr == "" {
		return bl
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := client.Ping().Err(); err != nil {
		utils.Log.Warnf("redis unreachable at %s, falling back to in-process blacklist: %v", redisAddr, err)
		return bl
	}
	bl.client = client
	return bl
}

func (b *Blacklist) Revoke(tokenID string, ttl time.Duration) {
	if b.client != nil {
		if err := b.client.Set(revocationKey(tokenID), "1", ttl).Err(); err == nil {
			return
		}
		utils.Log.Warn("redis set failed, storing revocation locally")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.local[tokenID] = time.Now().Add(ttl)
}

func (b *Blacklist) IsRevoked(tokenID string) bool {
	if tokenID == "" {
		return false
	}
	if b.client != nil {
		n, err := b.client.Exists(revocationKey(tokenID)).Result()
		if err == nil {
			return n > 0
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	until, ok := b.local[tokenID]
	if !ok {
		return false
	}
	if time.Now().After(until) {
		delete(b.local, tokenID)
		return false
	}
	return true
}

func revocationKey(tokenID string) string {
	return "staybook:revoked:" + tokenID
}
