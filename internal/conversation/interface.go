package conversation

import (
	"context"

	"strategy-shop/internal/model"
	"strategy-shop/pkg/annotation"
	"strategy-shop/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
	Parse(ctx context.Context, text string) annotation.Reply
	Topics(ctx context.Context) []model.TopicInfo

	// Sessions
	ListSessions(ctx context.Context, sc model.Scope) ([]model.Session, error)
	CurrentSession(ctx context.Context, sc model.Scope, topic model.Topic) (model.Session, error)
	DeleteSessions(ctx context.Context, sc model.Scope) error
}

// Generator produces the strategist's raw reply. *llmprovider.Manager
// satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
