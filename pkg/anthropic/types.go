package anthropic

import (
	"errors"
	"fmt"
	"net/http"
)

// Config configures a client.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	MaxTokens  int
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("anthropic: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is a Messages API call.
type Request struct {
	System    string
	Messages  []Message
	MaxTokens int
}

// Message is one turn. Role is "user" or "assistant".
type Message struct {
	Role   string
	Blocks []Block
}

// Block is a text or base64 image content block.
type Block struct {
	Text      string
	MediaType string
	Data      string
}

// IsImage reports whether the block carries image data.
func (b Block) IsImage() bool { return b.Data != "" }

// Response is the first text block of the reply plus usage.
type Response struct {
	Text       string
	StopReason string
	Model      string
	Usage      Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// APIError is a non-200 reply from the API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("anthropic: api error %d: %s: %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("anthropic: api error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the status the API replied with.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// wire types

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string     `json:"role"`
	Content []apiBlock `json:"content"`
}

type apiBlock struct {
	Type   string     `json:"type"`
	Text   string     `json:"text,omitempty"`
	Source *apiSource `json:"source,omitempty"`
}

type apiSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type apiResponse struct {
	Model      string     `json:"model"`
	Content    []apiBlock `json:"content"`
	StopReason string     `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
