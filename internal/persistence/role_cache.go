package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/makeready-service/internal/domain"
)

// RoleCache caches principal role resolutions in Redis so the identity
// middleware does not hit the profile table on every request.
// Key format: role:<principal>
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache wraps the given Redis client.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RoleCache{client: client, ttl: ttl}
}

// Get returns the cached role for a principal. A miss or a Redis failure is
// reported as not-found; callers fall back to the profile store.
func (rc *RoleCache) Get(ctx context.Context, principal domain.Principal) (domain.UserRole, bool) {
	if rc == nil || rc.client == nil {
		return "", false
	}
	val, err := rc.client.Get(ctx, rc.key(principal)).Result()
	if err != nil {
		return "", false
	}
	role, err := domain.ParseUserRole(val)
	if err != nil {
		return "", false
	}
	return role, true
}

// Set records a resolved role (expires after the configured TTL).
func (rc *RoleCache) Set(ctx context.Context, principal domain.Principal, role domain.UserRole) {
	if rc == nil || rc.client == nil {
		return
	}
	_ = rc.client.Set(ctx, rc.key(principal), string(role), rc.ttl).Err()
}

// Invalidate drops a principal's cached role after a profile save or role
// assignment.
func (rc *RoleCache) Invalidate(ctx context.Context, principal domain.Principal) {
	if rc == nil || rc.client == nil {
		return
	}
	_ = rc.client.Del(ctx, rc.key(principal)).Err()
}

func (rc *RoleCache) key(principal domain.Principal) string {
	return "role:" + string(principal)
}
