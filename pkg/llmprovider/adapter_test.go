package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"strategy-shop/pkg/anthropic"
	pkgErrors "strategy-shop/pkg/errors"
	"strategy-shop/pkg/gemini"
	"strategy-shop/pkg/openai"
)

type fakeAnthropic struct {
	got  *anthropic.Request
	resp *anthropic.Response
	err  error
}

func (f *fakeAnthropic) Complete(ctx context.Context, req *anthropic.Request) (*anthropic.Response, error) {
	f.got = req
	return f.resp, f.err
}

func (f *fakeAnthropic) Model() string { return "claude-test" }

type fakeGemini struct {
	got  *gemini.Request
	resp *gemini.Response
	err  error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return f.resp, f.err
}

func (f *fakeGemini) Model() string { return "gemini-test" }

type fakeOpenAI struct {
	got  *openai.Request
	resp *openai.Response
	err  error
}

func (f *fakeOpenAI) Complete(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	f.got = req
	return f.resp, f.err
}

func (f *fakeOpenAI) Model() string { return "deepseek-chat" }

func imageRequest() *Request {
	return &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "You are a strategist."}}},
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "Hi"}}},
			{Role: RoleAssistant, Parts: []Part{{Text: "Hello!"}}},
			{Role: RoleUser, Parts: []Part{
				{Image: &Image{MediaType: "image/png", Data: "aGVsbG8="}},
				{Text: "What about this chart?"},
			}},
		},
		MaxTokens: 300,
	}
}

func TestAnthropicAdapter_GenerateContent(t *testing.T) {
	client := &fakeAnthropic{resp: &anthropic.Response{
		Text:  "Let's talk pricing.",
		Usage: anthropic.Usage{InputTokens: 10, OutputTokens: 5},
	}}
	adapter := NewAnthropicAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), imageRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.got.System != "You are a strategist." {
		t.Errorf("system = %q", client.got.System)
	}
	if len(client.got.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(client.got.Messages))
	}
	if client.got.Messages[1].Role != "assistant" {
		t.Errorf("role = %q, want assistant", client.got.Messages[1].Role)
	}
	last := client.got.Messages[2].Blocks
	if len(last) != 2 || !last[0].IsImage() || last[0].MediaType != "image/png" || last[1].Text != "What about this chart?" {
		t.Errorf("unexpected blocks: %+v", last)
	}
	if client.got.MaxTokens != 300 {
		t.Errorf("max tokens = %d", client.got.MaxTokens)
	}

	if resp.Content.Text() != "Let's talk pricing." {
		t.Errorf("content = %q", resp.Content.Text())
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("total tokens = %d, want 15", resp.Usage.TotalTokens)
	}
	if resp.ProviderName != "anthropic" || resp.ModelName != "claude-test" {
		t.Errorf("provider/model = %s/%s", resp.ProviderName, resp.ModelName)
	}
}

func TestAnthropicAdapter_WrapsError(t *testing.T) {
	adapter := NewAnthropicAdapter(&fakeAnthropic{err: errors.New("boom")})

	_, err := adapter.GenerateContent(context.Background(), imageRequest())
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "anthropic" {
		t.Errorf("expected ProviderError from anthropic, got %v", err)
	}
}

func TestGeminiAdapter_GenerateContent(t *testing.T) {
	client := &fakeGemini{resp: &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "Focus on retention."}}},
		Usage:   &gemini.Usage{InputTokens: 7, OutputTokens: 3, TotalTokens: 10},
	}}
	adapter := NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), imageRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.got.SystemInstruction == nil || client.got.SystemInstruction.Parts[0].Text != "You are a strategist." {
		t.Errorf("system instruction not forwarded: %+v", client.got.SystemInstruction)
	}
	if client.got.Messages[1].Role != "model" {
		t.Errorf("assistant role should map to model, got %q", client.got.Messages[1].Role)
	}
	img := client.got.Messages[2].Parts[0]
	if img.MimeType != "image/png" || img.ImageData != "aGVsbG8=" {
		t.Errorf("image part not forwarded: %+v", img)
	}

	if resp.Content.Role != RoleAssistant || resp.Content.Text() != "Focus on retention." {
		t.Errorf("content = %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 10 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
}

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	client := &fakeOpenAI{resp: &openai.Response{
		Text:  "Hire slowly.",
		Usage: openai.Usage{PromptTokens: 8, CompletionTokens: 4, TotalTokens: 12},
	}}
	adapter := NewOpenAIAdapter(client, "deepseek")

	resp, err := adapter.GenerateContent(context.Background(), imageRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.got.System != "You are a strategist." {
		t.Errorf("system = %q", client.got.System)
	}
	last := client.got.Messages[2]
	if last.Text != "What about this chart?" || len(last.Images) != 1 || last.Images[0].Data != "aGVsbG8=" {
		t.Errorf("unexpected last message: %+v", last)
	}

	if resp.Content.Text() != "Hire slowly." || resp.Usage.TotalTokens != 12 {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.ProviderName != "deepseek" || adapter.Model() != "deepseek-chat" {
		t.Errorf("provider/model = %s/%s", resp.ProviderName, adapter.Model())
	}
}

func TestOpenAIAdapter_DefaultName(t *testing.T) {
	adapter := NewOpenAIAdapter(&fakeOpenAI{err: errors.New("boom")}, "")
	if adapter.Name() != "openai" {
		t.Errorf("name = %q, want openai", adapter.Name())
	}

	_, err := adapter.GenerateContent(context.Background(), imageRequest())
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "openai" {
		t.Errorf("expected ProviderError from openai, got %v", err)
	}
}

func TestAdapters_TagRateLimitAndTimeout(t *testing.T) {
	rateLimited := &anthropic.APIError{StatusCode: http.StatusTooManyRequests, Message: "slow down"}
	deadline := fmt.Errorf("post: %w", context.DeadlineExceeded)

	tests := []struct {
		name     string
		adapter  Provider
		sentinel error
		code     string
	}{
		{
			name:     "anthropic 429",
			adapter:  NewAnthropicAdapter(&fakeAnthropic{err: rateLimited}),
			sentinel: ErrProviderRateLimited,
			code:     pkgErrors.CodeRateLimit,
		},
		{
			name:     "gemini 429",
			adapter:  NewGeminiAdapter(&fakeGemini{err: &gemini.APIError{StatusCode: http.StatusTooManyRequests}}),
			sentinel: ErrProviderRateLimited,
			code:     pkgErrors.CodeRateLimit,
		},
		{
			name:     "openai deadline",
			adapter:  NewOpenAIAdapter(&fakeOpenAI{err: deadline}, "qwen"),
			sentinel: ErrProviderTimeout,
			code:     pkgErrors.CodeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.adapter.GenerateContent(context.Background(), imageRequest())
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v in chain, got %v", tt.sentinel, err)
			}
			var perr *ProviderError
			if !errors.As(err, &perr) || perr.Provider != tt.adapter.Name() {
				t.Errorf("expected ProviderError from %s, got %v", tt.adapter.Name(), err)
			}
			if got := pkgErrors.Classify(err).Code; got != tt.code {
				t.Errorf("Classify code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestAdapters_PlainErrorNotTagged(t *testing.T) {
	adapter := NewAnthropicAdapter(&fakeAnthropic{err: &anthropic.APIError{StatusCode: http.StatusInternalServerError}})

	_, err := adapter.GenerateContent(context.Background(), imageRequest())
	if errors.Is(err, ErrProviderRateLimited) || errors.Is(err, ErrProviderTimeout) {
		t.Errorf("500 should not be tagged, got %v", err)
	}
	var apiErr *anthropic.APIError
	if !errors.As(err, &apiErr) {
		t.Errorf("client error should stay in chain, got %v", err)
	}
}
