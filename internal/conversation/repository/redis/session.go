package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	repo "strategy-shop/internal/conversation/repository"
	"strategy-shop/internal/model"
)

func (r *implRepository) SaveSession(ctx context.Context, s model.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.SaveSession: marshal: %v", err)
		return repo.ErrFailedToSave
	}

	key := r.key(s.UserID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, s.Key(), b)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.SaveSession: %v", err)
		return repo.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, userID, key string) (model.Session, error) {
	b, err := r.client.HGet(ctx, r.key(userID), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.GetSession: %v", err)
		return model.Session{}, repo.ErrFailedToGet
	}

	var s model.Session
	if err := json.Unmarshal(b, &s); err != nil {
		r.l.Warnf(ctx, "conversation.repository.redis.GetSession: corrupt session %s: %v", key, err)
		return model.Session{}, nil
	}
	if !repo.Live(s, r.ttl, r.now()) {
		return model.Session{}, nil
	}
	return s, nil
}

// ListSessions also prunes sessions that went idle while the hash was kept
// alive by newer ones.
func (r *implRepository) ListSessions(ctx context.Context, userID string) ([]model.Session, error) {
	key := r.key(userID)
	raw, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.ListSessions: %v", err)
		return nil, repo.ErrFailedToGet
	}

	now := r.now()
	sessions := make([]model.Session, 0, len(raw))
	var stale []string
	for field, v := range raw {
		var s model.Session
		if err := json.Unmarshal([]byte(v), &s); err != nil || !repo.Live(s, r.ttl, now) {
			stale = append(stale, field)
			continue
		}
		sessions = append(sessions, s)
	}

	if len(stale) > 0 {
		if err := r.client.HDel(ctx, key, stale...).Err(); err != nil {
			r.l.Warnf(ctx, "conversation.repository.redis.ListSessions: prune: %v", err)
		}
	}

	model.SortSessionsByActivity(sessions)
	return sessions, nil
}

func (r *implRepository) DeleteSessions(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		r.l.Errorf(ctx, "conversation.repository.redis.DeleteSessions: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
