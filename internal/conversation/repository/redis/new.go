package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	repo "strategy-shop/internal/conversation/repository"
	"strategy-shop/pkg/log"
)

type implRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	l      log.Logger
	now    func() time.Time
}

// New creates a Redis-backed session Repository. Each user's sessions live
// in one hash whose expiry is refreshed on every save.
func New(client *redis.Client, prefix string, ttl time.Duration, l log.Logger) repo.Repository {
	if client == nil {
		panic("conversation/repository/redis: client is required")
	}
	if ttl <= 0 {
		ttl = repo.DefaultTTL
	}
	return &implRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		l:      l,
		now:    time.Now,
	}
}

func (r *implRepository) key(userID string) string {
	return r.prefix + "sessions:" + userID
}
