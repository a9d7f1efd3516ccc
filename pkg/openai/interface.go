package openai

import "context"

// IOpenAI is a chat completions client for OpenAI and compatible hosts
// (DeepSeek, Qwen). Implementations are safe for concurrent use.
type IOpenAI interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
