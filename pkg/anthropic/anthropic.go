package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type anthropicImpl struct {
	apiKey     string
	model      string
	apiURL     string
	maxTokens  int
	httpClient *http.Client
}

func newAnthropicImpl(cfg Config) *anthropicImpl {
	return &anthropicImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		maxTokens:  cfg.MaxTokens,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

// Complete sends a message to the Anthropic API and returns the text response.
func (a *anthropicImpl) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("anthropic: at least one message is required")
	}

	body, err := json.Marshal(a.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("anthropic: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", APIVersion)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: api call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("anthropic: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp apiErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			apiErr.Type = errResp.Error.Type
			apiErr.Message = errResp.Error.Message
		}
		if resp.StatusCode == http.StatusNotFound {
			apiErr.Message = fmt.Sprintf("model %q not found; set a model your account can access: %s", a.model, apiErr.Message)
		}
		return nil, apiErr
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("anthropic: unmarshal response: %w", err)
	}

	out := &Response{
		StopReason: apiResp.StopReason,
		Model:      apiResp.Model,
		Usage: Usage{
			InputTokens:  apiResp.Usage.InputTokens,
			OutputTokens: apiResp.Usage.OutputTokens,
		},
	}
	for _, b := range apiResp.Content {
		if b.Type == "text" {
			out.Text = b.Text
			break
		}
	}
	return out, nil
}

func (a *anthropicImpl) transformRequest(req *Request) apiRequest {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = a.maxTokens
	}

	out := apiRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  make([]apiMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		msg := apiMessage{Role: m.Role, Content: make([]apiBlock, 0, len(m.Blocks))}
		// Images go before text, as the API recommends.
		for _, b := range m.Blocks {
			if b.IsImage() {
				msg.Content = append(msg.Content, apiBlock{
					Type:   "image",
					Source: &apiSource{Type: "base64", MediaType: b.MediaType, Data: b.Data},
				})
			}
		}
		for _, b := range m.Blocks {
			if !b.IsImage() && b.Text != "" {
				msg.Content = append(msg.Content, apiBlock{Type: "text", Text: b.Text})
			}
		}
		out.Messages = append(out.Messages, msg)
	}
	return out
}
