package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	repo "strategy-shop/internal/conversation/repository"
	"strategy-shop/internal/model"
)

const maxUsers = 10000

type implRepository struct {
	mu    sync.Mutex
	users *expirable.LRU[string, map[string]model.Session]
	ttl   time.Duration
	now   func() time.Time
}

// New creates an in-process session Repository bounded by user count and TTL.
func New(ttl time.Duration) repo.Repository {
	if ttl <= 0 {
		ttl = repo.DefaultTTL
	}
	return &implRepository{
		users: expirable.NewLRU[string, map[string]model.Session](maxUsers, nil, ttl),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (r *implRepository) SaveSession(ctx context.Context, s model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, _ := r.users.Get(s.UserID)
	sessions := make(map[string]model.Session, len(existing)+1)
	maps.Copy(sessions, existing)
	sessions[s.Key()] = s
	r.users.Add(s.UserID, sessions)
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, userID, key string) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, _ := r.users.Peek(userID)
	s, ok := sessions[key]
	if !ok || !repo.Live(s, r.ttl, r.now()) {
		return model.Session{}, nil
	}
	return s, nil
}

func (r *implRepository) ListSessions(ctx context.Context, userID string) ([]model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, _ := r.users.Peek(userID)
	now := r.now()
	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if repo.Live(s, r.ttl, now) {
			out = append(out, s)
		}
	}
	model.SortSessionsByActivity(out)
	return out, nil
}

func (r *implRepository) DeleteSessions(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users.Remove(userID)
	return nil
}
