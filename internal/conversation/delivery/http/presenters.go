package http

import (
	"time"

	"strategy-shop/internal/conversation"
	"strategy-shop/internal/model"
	"strategy-shop/pkg/annotation"
)

// --- Request DTOs ---

type chatMessageReq struct {
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content" binding:"max=8000"`
}

type chatReq struct {
	Topic        string           `json:"topic"         binding:"required"`
	Messages     []chatMessageReq `json:"messages"      binding:"required,min=1,max=200,dive"`
	ImageData    string           `json:"image_data"`
	SearchVideos *bool            `json:"search_videos"`
	SessionID    string           `json:"session_id"`
}

func (r chatReq) validate() error {
	if !model.Topic(r.Topic).IsValid() {
		return conversation.ErrUnknownTopic
	}
	return nil
}

func (r chatReq) toInput() conversation.ChatInput {
	msgs := make([]conversation.ChatMessage, len(r.Messages))
	for i, m := range r.Messages {
		msgs[i] = conversation.ChatMessage{Role: m.Role, Content: m.Content}
	}
	return conversation.ChatInput{
		Topic:        model.Topic(r.Topic),
		Messages:     msgs,
		ImageData:    r.ImageData,
		SearchVideos: r.SearchVideos == nil || *r.SearchVideos,
		SessionID:    r.SessionID,
	}
}

type parseReq struct {
	Text string `json:"text" binding:"required"`
}

func (r parseReq) validate() error { return nil }

type currentSessionReq struct {
	Topic string `form:"topic"`
}

func (r currentSessionReq) validate() error {
	if r.Topic != "" && !model.Topic(r.Topic).IsValid() {
		return conversation.ErrUnknownTopic
	}
	return nil
}

// --- Response DTOs ---

type videoResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
}

type chatResp struct {
	Message            string      `json:"message"`
	AudioText          string      `json:"audio_text"`
	AudioURL           string      `json:"audio_url,omitempty"`
	NeedsProfessional  bool        `json:"needs_professional"`
	NeedsDeepWork      bool        `json:"needs_deep_work"`
	ProfessionalType   string      `json:"professional_type,omitempty"`
	EscalationType     string      `json:"escalation_type,omitempty"`
	FrameworkSuggested string      `json:"framework_suggested,omitempty"`
	SafetyLevel        string      `json:"safety_level"`
	VideoSuggestion    string      `json:"video_suggestion,omitempty"`
	Videos             []videoResp `json:"videos"`
	Mood               string      `json:"mood"`
	ConversationCount  int         `json:"conversation_count"`
	SessionID          string      `json:"session_id"`
	NextStep           string      `json:"next_step"`
}

func (h *handler) newChatResp(out conversation.ChatOutput) chatResp {
	videos := make([]videoResp, len(out.Videos))
	for i, v := range out.Videos {
		videos[i] = videoResp{ID: v.ID, Title: v.Title, Thumbnail: v.ThumbnailURL, ChannelTitle: v.ChannelName}
	}
	r := out.Reply
	return chatResp{
		Message:            r.DisplayMessage,
		AudioText:          r.SpeechText,
		AudioURL:           out.AudioURL,
		NeedsProfessional:  r.EscalationRequested,
		NeedsDeepWork:      r.DeepWorkRequested,
		ProfessionalType:   string(r.ProfessionalCategory),
		EscalationType:     out.EscalationType(),
		FrameworkSuggested: r.FrameworkName,
		SafetyLevel:        out.SafetyLevel(),
		VideoSuggestion:    r.VideoQuery,
		Videos:             videos,
		Mood:               r.Mood,
		ConversationCount:  out.ConversationCount,
		SessionID:          out.SessionID,
		NextStep:           out.NextStep,
	}
}

type parseResp struct {
	Message            string `json:"message"`
	AudioText          string `json:"audio_text"`
	NeedsProfessional  bool   `json:"needs_professional"`
	NeedsDeepWork      bool   `json:"needs_deep_work"`
	ProfessionalType   string `json:"professional_type,omitempty"`
	FrameworkSuggested string `json:"framework_suggested,omitempty"`
	VideoSuggestion    string `json:"video_suggestion,omitempty"`
	Mood               string `json:"mood"`
}

func (h *handler) newParseResp(r annotation.Reply) parseResp {
	return parseResp{
		Message:            r.DisplayMessage,
		AudioText:          r.SpeechText,
		NeedsProfessional:  r.EscalationRequested,
		NeedsDeepWork:      r.DeepWorkRequested,
		ProfessionalType:   string(r.ProfessionalCategory),
		FrameworkSuggested: r.FrameworkName,
		VideoSuggestion:    r.VideoQuery,
		Mood:               r.Mood,
	}
}

type topicResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Context     string `json:"context"`
	Greeting    string `json:"greeting"`
}

type topicsResp struct {
	Topics []topicResp `json:"topics"`
}

func (h *handler) newTopicsResp(list []model.TopicInfo) topicsResp {
	out := make([]topicResp, len(list))
	for i, t := range list {
		out[i] = topicResp{
			ID:          string(t.ID),
			Title:       t.Title,
			Emoji:       t.Emoji,
			Description: t.Description,
			Context:     t.Context,
			Greeting:    t.Greeting,
		}
	}
	return topicsResp{Topics: out}
}

type sessionResp struct {
	ID           string          `json:"id"`
	Topic        string          `json:"topic"`
	Messages     []model.Message `json:"messages"`
	StartTime    time.Time       `json:"start_time"`
	LastActivity time.Time       `json:"last_activity"`
}

func newSessionResp(s model.Session) sessionResp {
	msgs := s.Messages
	if msgs == nil {
		msgs = []model.Message{}
	}
	return sessionResp{
		ID:           s.Key(),
		Topic:        string(s.Topic),
		Messages:     msgs,
		StartTime:    s.StartTime,
		LastActivity: s.LastActivity,
	}
}

type sessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func (h *handler) newSessionsResp(list []model.Session) sessionsResp {
	out := make([]sessionResp, len(list))
	for i, s := range list {
		out[i] = newSessionResp(s)
	}
	return sessionsResp{Sessions: out}
}

type currentSessionResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newCurrentSessionResp(s model.Session) currentSessionResp {
	return currentSessionResp{Session: newSessionResp(s)}
}
