package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"strategy-shop/internal/conversation"
	"strategy-shop/internal/model"
	"strategy-shop/internal/speech"
	"strategy-shop/internal/video"
	"strategy-shop/pkg/annotation"
	"strategy-shop/pkg/events"
	"strategy-shop/pkg/llmprovider"
	"strategy-shop/pkg/metrics"
	"strategy-shop/pkg/relevance"
)

// Chat runs one strategist turn: allowance check, model call, reply parsing,
// best-effort audio and videos, then session bookkeeping.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input conversation.ChatInput) (conversation.ChatOutput, error) {
	if err := validateChat(input); err != nil {
		return conversation.ChatOutput{}, err
	}
	image, err := parseImageDataURL(input.ImageData)
	if err != nil {
		return conversation.ChatOutput{}, err
	}

	p, err := uc.profiles.CheckAllowance(ctx, sc)
	if err != nil {
		return conversation.ChatOutput{}, err
	}

	resp, err := uc.llm.GenerateContent(ctx, buildRequest(input, p, image))
	if err != nil {
		uc.l.Errorf(ctx, "%s: GenerateContent: %v", logPrefixChat, err)
		return conversation.ChatOutput{}, fmt.Errorf("generate reply: %w", err)
	}
	reply := annotation.Parse(resp.Content.Text())

	count, err := uc.profiles.IncrementConversation(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "%s: IncrementConversation: %v", logPrefixChat, err)
		count = p.ConversationCount + 1
	}

	out := conversation.ChatOutput{
		Reply:             reply,
		ConversationCount: count,
		NextStep:          nextStep(count),
	}
	out.AudioURL = uc.synthesize(ctx, reply)
	if input.SearchVideos {
		out.Videos = uc.suggestVideos(ctx, reply, lastUserContent(input.Messages))
	}

	out.SessionID = uc.saveTurn(ctx, sc, input, out)
	uc.escalate(ctx, sc, input.Topic, reply)
	return out, nil
}

func validateChat(input conversation.ChatInput) error {
	if !input.Topic.IsValid() {
		return conversation.ErrUnknownTopic
	}
	if len(input.Messages) == 0 {
		return conversation.ErrEmptyMessages
	}
	last := input.Messages[len(input.Messages)-1]
	if model.NormalizeRole(last.Role) != model.RoleUser {
		return conversation.ErrLastMessageNotUser
	}
	if strings.TrimSpace(last.Content) == "" && input.ImageData == "" {
		return conversation.ErrEmptyMessages
	}
	return nil
}

func buildRequest(input conversation.ChatInput, p model.Profile, image *llmprovider.Image) *llmprovider.Request {
	history := input.Messages
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}

	msgs := make([]llmprovider.Message, 0, len(history))
	for i, m := range history {
		role := llmprovider.RoleUser
		if model.NormalizeRole(m.Role) == model.RoleStrategist {
			role = llmprovider.RoleAssistant
		}

		var parts []llmprovider.Part
		if i == len(history)-1 && image != nil {
			parts = append(parts, llmprovider.Part{Image: image})
		}
		if m.Content != "" {
			parts = append(parts, llmprovider.Part{Text: m.Content})
		}
		if len(parts) == 0 {
			continue
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Parts: parts})
	}

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: systemPrompt(input.Topic, p)}},
		},
		Messages: msgs,
	}
}

func (uc *implUseCase) synthesize(ctx context.Context, reply annotation.Reply) string {
	if uc.speech == nil || strings.TrimSpace(reply.SpeechText) == "" {
		return ""
	}
	out, err := uc.speech.Synthesize(ctx, speech.SynthesizeInput{Text: reply.SpeechText})
	if err != nil {
		uc.l.Warnf(ctx, "%s: audio skipped: %v", logPrefixChat, err)
		return ""
	}
	return out.AudioURL
}

func (uc *implUseCase) suggestVideos(ctx context.Context, reply annotation.Reply, userQuery string) []relevance.Candidate {
	if uc.videos == nil || !reply.HasVideoQuery() {
		return nil
	}
	out, err := uc.videos.Search(ctx, video.SearchInput{Query: reply.VideoQuery, UserQuery: userQuery})
	if err != nil {
		uc.l.Warnf(ctx, "%s: videos skipped: %v", logPrefixChat, err)
		return nil
	}
	return out.Videos
}

// saveTurn appends the latest user message and the reply to the session
// and returns its id. Failures are logged; the reply is still returned.
func (uc *implUseCase) saveTurn(ctx context.Context, sc model.Scope, input conversation.ChatInput, out conversation.ChatOutput) string {
	now := uc.now().UTC()

	var s model.Session
	if input.SessionID != "" {
		existing, err := uc.repo.GetSession(ctx, sc.UserID, input.SessionID)
		if err != nil {
			uc.l.Warnf(ctx, "%s: GetSession: %v", logPrefixChat, err)
		}
		if !existing.StartTime.IsZero() && existing.Topic == input.Topic {
			s = existing
		}
	}

	if s.StartTime.IsZero() {
		s = model.Session{UserID: sc.UserID, Topic: input.Topic, StartTime: now}
		for _, m := range input.Messages[:len(input.Messages)-1] {
			s.Messages = append(s.Messages, model.Message{
				ID:        uuid.NewString(),
				Role:      model.NormalizeRole(m.Role),
				Content:   m.Content,
				Timestamp: now,
			})
		}
	}

	last := input.Messages[len(input.Messages)-1]
	userMsg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Content:   last.Content,
		Timestamp: now,
	}
	if input.ImageData != "" {
		userMsg.MediaType = "image"
	}

	reply := out.Reply
	strategistMsg := model.Message{
		ID:                uuid.NewString(),
		Role:              model.RoleStrategist,
		Content:           reply.DisplayMessage,
		Timestamp:         now,
		AudioURL:          out.AudioURL,
		NeedsProfessional: reply.EscalationRequested,
		ProfessionalType:  string(reply.ProfessionalCategory),
		VideoSuggestion:   reply.VideoQuery,
		Framework:         reply.FrameworkName,
		Mood:              reply.Mood,
	}
	s.Messages = append(s.Messages, userMsg, strategistMsg)
	s.LastActivity = now

	if err := uc.repo.SaveSession(ctx, s); err != nil {
		uc.l.Warnf(ctx, "%s: SaveSession: %v", logPrefixChat, err)
	}
	return s.Key()
}

func (uc *implUseCase) escalate(ctx context.Context, sc model.Scope, topic model.Topic, reply annotation.Reply) {
	if !reply.EscalationRequested {
		return
	}

	kind := conversation.EscalationProfessional
	if reply.DeepWorkRequested {
		kind = conversation.EscalationClaritySprint
	}
	metrics.Escalations.WithLabelValues(kind).Inc()

	evt := events.EscalationRequested{
		UserID:           sc.UserID,
		Topic:            string(topic),
		EscalationType:   kind,
		ProfessionalType: string(reply.ProfessionalCategory),
		Framework:        reply.FrameworkName,
		OccurredAt:       uc.now().UTC(),
	}
	if err := uc.pub.Publish(events.SubjectEscalationRequested, evt); err != nil {
		uc.l.Warnf(ctx, "%s: Publish: %v", logPrefixChat, err)
	}
}

func lastUserContent(msgs []conversation.ChatMessage) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if model.NormalizeRole(msgs[i].Role) == model.RoleUser {
			return msgs[i].Content
		}
	}
	return ""
}
