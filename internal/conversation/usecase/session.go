package usecase

import (
	"context"

	"strategy-shop/internal/conversation"
	"strategy-shop/internal/model"
	"strategy-shop/pkg/annotation"
)

// Parse runs the annotation parser alone.
func (uc *implUseCase) Parse(ctx context.Context, text string) annotation.Reply {
	return annotation.Parse(text)
}

// Topics returns the topic catalogue.
func (uc *implUseCase) Topics(ctx context.Context) []model.TopicInfo {
	return model.Topics()
}

func (uc *implUseCase) ListSessions(ctx context.Context, sc model.Scope) ([]model.Session, error) {
	sessions, err := uc.repo.ListSessions(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

// CurrentSession returns the most recently active session, restricted to
// topic when one is given.
func (uc *implUseCase) CurrentSession(ctx context.Context, sc model.Scope, topic model.Topic) (model.Session, error) {
	if topic != "" && !topic.IsValid() {
		return model.Session{}, conversation.ErrUnknownTopic
	}

	sessions, err := uc.ListSessions(ctx, sc)
	if err != nil {
		return model.Session{}, err
	}
	for _, s := range sessions {
		if topic == "" || s.Topic == topic {
			return s, nil
		}
	}
	return model.Session{}, conversation.ErrSessionNotFound
}

func (uc *implUseCase) DeleteSessions(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.DeleteSessions(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSessions: %v", err)
		return err
	}
	return nil
}
