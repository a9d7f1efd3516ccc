package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, url string) IAnthropic {
	t.Helper()
	c, err := New(Config{APIKey: "test-key", Model: "test-model", APIURL: url})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("expected x-api-key test-key, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != APIVersion {
			t.Errorf("unexpected anthropic-version %q", r.Header.Get("anthropic-version"))
		}

		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("expected model test-model, got %q", req.Model)
		}
		if req.MaxTokens != DefaultMaxTokens {
			t.Errorf("expected max_tokens %d, got %d", DefaultMaxTokens, req.MaxTokens)
		}
		if req.System != "you are a strategist" {
			t.Errorf("unexpected system prompt %q", req.System)
		}
		last := req.Messages[len(req.Messages)-1]
		if len(last.Content) != 2 || last.Content[0].Type != "image" || last.Content[1].Type != "text" {
			t.Errorf("expected image then text, got %+v", last.Content)
		}
		if last.Content[0].Source.MediaType != "image/png" || last.Content[0].Source.Data != "aGVsbG8=" {
			t.Errorf("unexpected image source %+v", last.Content[0].Source)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"model":"test-model","content":[{"type":"text","text":"Let's talk pricing. MOOD: thinking"}],"stop_reason":"end_turn","usage":{"input_tokens":12,"output_tokens":7}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	resp, err := c.Complete(context.Background(), &Request{
		System: "you are a strategist",
		Messages: []Message{
			{Role: "user", Blocks: []Block{{Text: "hi"}}},
			{Role: "assistant", Blocks: []Block{{Text: "hello"}}},
			{Role: "user", Blocks: []Block{{Text: "look at this"}, {MediaType: "image/png", Data: "aGVsbG8="}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Let's talk pricing. MOOD: thinking" {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 7 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Complete(context.Background(), &Request{
		Messages: []Message{{Role: "user", Blocks: []Block{{Text: "hi"}}}},
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.HTTPStatus() != http.StatusTooManyRequests || apiErr.Type != "rate_limit_error" {
		t.Errorf("unexpected error %+v", apiErr)
	}
}

func TestComplete_ModelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"not_found_error","message":"model: test-model"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Complete(context.Background(), &Request{
		Messages: []Message{{Role: "user", Blocks: []Block{{Text: "hi"}}}},
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected model not found error, got %v", err)
	}
}

func TestComplete_NoMessages(t *testing.T) {
	c := newTestClient(t, "http://unused")
	if _, err := c.Complete(context.Background(), &Request{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
	c, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != DefaultModel {
		t.Errorf("Model() = %q, want default", c.Model())
	}
}
