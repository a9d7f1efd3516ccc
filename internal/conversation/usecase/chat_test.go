package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"strategy-shop/internal/conversation"
	sessionMemory "strategy-shop/internal/conversation/repository/memory"
	"strategy-shop/internal/model"
	"strategy-shop/internal/profile"
	profileMemory "strategy-shop/internal/profile/repository/memory"
	profileUC "strategy-shop/internal/profile/usecase"
	"strategy-shop/internal/speech"
	"strategy-shop/internal/video"
	"strategy-shop/pkg/events"
	"strategy-shop/pkg/llmprovider"
	"strategy-shop/pkg/log"
	"strategy-shop/pkg/relevance"
)

type fakeGenerator struct {
	reply string
	err   error
	reqs  []*llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: f.reply}}},
	}, nil
}

type fakeSpeech struct {
	err  error
	text string
}

func (f *fakeSpeech) Synthesize(_ context.Context, in speech.SynthesizeInput) (speech.SynthesizeOutput, error) {
	f.text = in.Text
	if f.err != nil {
		return speech.SynthesizeOutput{}, f.err
	}
	return speech.SynthesizeOutput{AudioURL: "data:audio/mp3;base64,QQ=="}, nil
}

type fakeVideos struct {
	got video.SearchInput
	err error
}

func (f *fakeVideos) Search(_ context.Context, in video.SearchInput) (video.SearchOutput, error) {
	f.got = in
	if f.err != nil {
		return video.SearchOutput{}, f.err
	}
	return video.SearchOutput{Videos: []relevance.Candidate{{ID: "v1", Title: "Pricing strategy 101"}}}, nil
}

type recordingPublisher struct {
	subjects []string
	payloads []any
}

func (p *recordingPublisher) Publish(subject string, data any) error {
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func (p *recordingPublisher) Close() {}

type fixture struct {
	uc       *implUseCase
	gen      *fakeGenerator
	speech   *fakeSpeech
	videos   *fakeVideos
	pub      *recordingPublisher
	profiles profile.UseCase
}

func newFixture(t *testing.T, reply string) *fixture {
	t.Helper()
	l := log.NewNop()
	f := &fixture{
		gen:    &fakeGenerator{reply: reply},
		speech: &fakeSpeech{},
		videos: &fakeVideos{},
		pub:    &recordingPublisher{},
	}
	f.profiles = profileUC.New(profileMemory.New(), events.NewNoop(), profile.Limits{FreeLimit: 3, EmailBonus: 2}, l)
	f.uc = New(sessionMemory.New(time.Hour), f.gen, f.profiles, f.speech, f.videos, f.pub, l).(*implUseCase)
	return f
}

var sc = model.Scope{UserID: "user_chat"}

func userTurn(content string) []conversation.ChatMessage {
	return []conversation.ChatMessage{
		{Role: "strategist", Content: "Let's talk pricing strategy."},
		{Role: "user", Content: content},
	}
}

func TestChat_FullTurn(t *testing.T) {
	f := newFixture(t, "I've been there. *leans forward* What's your margin?\nFRAMEWORK: Pricing power analysis\nVIDEO_HELPFUL: pricing strategy\nMOOD: Analyzing")
	ctx := context.Background()

	out, err := f.uc.Chat(ctx, sc, conversation.ChatInput{
		Topic:        model.TopicPricingRevenue,
		Messages:     userTurn("Should I raise my prices?"),
		SearchVideos: true,
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if out.Reply.Mood != "analyzing" || out.Reply.FrameworkName != "Pricing power analysis" {
		t.Errorf("unexpected reply %+v", out.Reply)
	}
	if strings.Contains(out.Reply.DisplayMessage, "FRAMEWORK") {
		t.Errorf("markers left in display: %q", out.Reply.DisplayMessage)
	}
	if strings.Contains(f.speech.text, "leans forward") {
		t.Errorf("stage direction sent to speech: %q", f.speech.text)
	}
	if out.AudioURL == "" {
		t.Error("expected audio")
	}
	if len(out.Videos) != 1 || f.videos.got.Query != "pricing strategy" || f.videos.got.UserQuery != "Should I raise my prices?" {
		t.Errorf("unexpected videos %+v / %+v", out.Videos, f.videos.got)
	}
	if out.ConversationCount != 1 || out.NextStep != nextStepStart {
		t.Errorf("count %d, next step %q", out.ConversationCount, out.NextStep)
	}
	if out.SafetyLevel() != conversation.SafetySafeDIY || out.EscalationType() != "" {
		t.Errorf("unexpected safety %s / escalation %s", out.SafetyLevel(), out.EscalationType())
	}
	if len(f.pub.subjects) != 0 {
		t.Error("no escalation expected")
	}

	req := f.gen.reqs[0]
	if len(req.Messages) != 2 || req.Messages[0].Role != llmprovider.RoleAssistant {
		t.Errorf("unexpected history %+v", req.Messages)
	}
	if !strings.Contains(req.SystemInstruction.Text(), "Current topic: PRICING-REVENUE") {
		t.Error("system prompt missing topic")
	}

	s, err := f.uc.CurrentSession(ctx, sc, model.TopicPricingRevenue)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if s.Key() != out.SessionID || len(s.Messages) != 3 {
		t.Errorf("unexpected session %s with %d messages", s.Key(), len(s.Messages))
	}
	if s.Messages[2].Role != model.RoleStrategist || s.Messages[2].Framework != "Pricing power analysis" {
		t.Errorf("unexpected strategist message %+v", s.Messages[2])
	}
}

func TestChat_ContinuesSession(t *testing.T) {
	f := newFixture(t, "Tell me more.")
	ctx := context.Background()
	in := conversation.ChatInput{Topic: model.TopicTeamHiring, Messages: userTurn("Should I hire?")}

	first, err := f.uc.Chat(ctx, sc, in)
	if err != nil {
		t.Fatal(err)
	}

	in.SessionID = first.SessionID
	in.Messages = append(in.Messages, conversation.ChatMessage{Role: "strategist", Content: "Tell me more."}, conversation.ChatMessage{Role: "user", Content: "A sales rep."})
	second, err := f.uc.Chat(ctx, sc, in)
	if err != nil {
		t.Fatal(err)
	}
	if second.SessionID != first.SessionID {
		t.Errorf("expected same session, got %s and %s", first.SessionID, second.SessionID)
	}

	sessions, _ := f.uc.ListSessions(ctx, sc)
	if len(sessions) != 1 || len(sessions[0].Messages) != 5 {
		t.Fatalf("unexpected sessions %+v", sessions)
	}
	if second.ConversationCount != 2 {
		t.Errorf("expected count 2, got %d", second.ConversationCount)
	}
}

func TestChat_Escalation(t *testing.T) {
	f := newFixture(t, "This needs a lawyer to review the contract. PRO_RECOMMENDED")

	out, err := f.uc.Chat(context.Background(), sc, conversation.ChatInput{
		Topic:    model.TopicGeneralBusiness,
		Messages: userTurn("My partner wants out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Reply.EscalationRequested || out.SafetyLevel() != conversation.SafetyProfessionalRequired {
		t.Errorf("expected escalation, got %+v", out.Reply)
	}
	if len(f.pub.subjects) != 1 || f.pub.subjects[0] != events.SubjectEscalationRequested {
		t.Fatalf("expected escalation event, got %v", f.pub.subjects)
	}
	evt := f.pub.payloads[0].(events.EscalationRequested)
	if evt.EscalationType != conversation.EscalationProfessional || evt.ProfessionalType != "lawyer" {
		t.Errorf("unexpected event %+v", evt)
	}
}

func TestChat_ClaritySprint(t *testing.T) {
	f := newFixture(t, "Let's slow down. CLARITY_SPRINT_RECOMMENDED")

	out, err := f.uc.Chat(context.Background(), sc, conversation.ChatInput{
		Topic:    model.TopicStrategyDirection,
		Messages: userTurn("Pivot or persevere?"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.EscalationType() != conversation.EscalationClaritySprint || out.SafetyLevel() != conversation.SafetySafeDIY {
		t.Errorf("unexpected escalation %s / %s", out.EscalationType(), out.SafetyLevel())
	}
	if evt := f.pub.payloads[0].(events.EscalationRequested); evt.EscalationType != conversation.EscalationClaritySprint {
		t.Errorf("unexpected event %+v", evt)
	}
}

func TestChat_Allowance(t *testing.T) {
	f := newFixture(t, "Sure.")
	ctx := context.Background()
	in := conversation.ChatInput{Topic: model.TopicPricingRevenue, Messages: userTurn("Hi")}

	for i := 0; i < 3; i++ {
		if _, err := f.uc.Chat(ctx, sc, in); err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
	}
	if _, err := f.uc.Chat(ctx, sc, in); !errors.Is(err, profile.ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
	if len(f.gen.reqs) != 3 {
		t.Errorf("model called %d times, want 3", len(f.gen.reqs))
	}
}

func TestChat_GenerationFailure(t *testing.T) {
	f := newFixture(t, "")
	f.gen.err = llmprovider.ErrAllProvidersFailed
	ctx := context.Background()

	_, err := f.uc.Chat(ctx, sc, conversation.ChatInput{Topic: model.TopicPricingRevenue, Messages: userTurn("Hi")})
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Fatalf("expected provider error, got %v", err)
	}

	md, _ := f.profiles.Metadata(ctx, sc)
	if md.ConversationCount != 0 {
		t.Errorf("failed turn must not be counted, got %d", md.ConversationCount)
	}
}

func TestChat_EnrichmentFailuresAreSwallowed(t *testing.T) {
	f := newFixture(t, "Watch this. VIDEO_HELPFUL: hiring process")
	f.speech.err = errors.New("tts down")
	f.videos.err = errors.New("quota")

	out, err := f.uc.Chat(context.Background(), sc, conversation.ChatInput{
		Topic:        model.TopicTeamHiring,
		Messages:     userTurn("How do I hire?"),
		SearchVideos: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.AudioURL != "" || out.Videos != nil {
		t.Errorf("expected no enrichment, got %+v", out)
	}
}

func TestChat_Validation(t *testing.T) {
	f := newFixture(t, "ok")
	ctx := context.Background()

	tests := []struct {
		name string
		in   conversation.ChatInput
		want error
	}{
		{"unknown topic", conversation.ChatInput{Topic: "cooking", Messages: userTurn("hi")}, conversation.ErrUnknownTopic},
		{"no messages", conversation.ChatInput{Topic: model.TopicPricingRevenue}, conversation.ErrEmptyMessages},
		{"last from strategist", conversation.ChatInput{Topic: model.TopicPricingRevenue, Messages: []conversation.ChatMessage{{Role: "strategist", Content: "hey"}}}, conversation.ErrLastMessageNotUser},
		{"blank", conversation.ChatInput{Topic: model.TopicPricingRevenue, Messages: userTurn("  ")}, conversation.ErrEmptyMessages},
		{"bad image", conversation.ChatInput{Topic: model.TopicPricingRevenue, Messages: userTurn("look"), ImageData: "data:text/plain;base64,QQ=="}, conversation.ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.Chat(ctx, sc, tt.in); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
	if len(f.gen.reqs) != 0 {
		t.Error("model must not be called for invalid input")
	}
}

func TestChat_ImageAttachedToLastMessage(t *testing.T) {
	f := newFixture(t, "Nice storefront.")

	_, err := f.uc.Chat(context.Background(), sc, conversation.ChatInput{
		Topic:     model.TopicGrowthMarketing,
		Messages:  userTurn("What do you think of this?"),
		ImageData: "data:image/png;base64,iVBORw0KGgo=",
	})
	if err != nil {
		t.Fatal(err)
	}

	last := f.gen.reqs[0].Messages[1]
	if len(last.Parts) != 2 || last.Parts[0].Image == nil || last.Parts[0].Image.MediaType != "image/png" {
		t.Fatalf("image not attached: %+v", last.Parts)
	}
	if last.Parts[1].Text != "What do you think of this?" {
		t.Errorf("unexpected text part %+v", last.Parts[1])
	}
}
