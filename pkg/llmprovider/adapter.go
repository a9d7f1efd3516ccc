package llmprovider

import (
	"context"

	"strategy-shop/pkg/anthropic"
	"strategy-shop/pkg/gemini"
	"strategy-shop/pkg/openai"
)

// AnthropicAdapter adapts pkg/anthropic to llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	anthropicReq := &anthropic.Request{
		Messages:  make([]anthropic.Message, len(req.Messages)),
		MaxTokens: req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		anthropicReq.System = req.SystemInstruction.Text()
	}
	for i, msg := range req.Messages {
		anthropicReq.Messages[i] = anthropic.Message{Role: msg.Role, Blocks: toAnthropicBlocks(msg.Parts)}
	}

	resp, err := a.client.Complete(ctx, anthropicReq)
	if err != nil {
		return nil, newProviderError(a.Name(), err)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

func toAnthropicBlocks(parts []Part) []anthropic.Block {
	blocks := make([]anthropic.Block, 0, len(parts))
	for _, p := range parts {
		if p.Image != nil {
			blocks = append(blocks, anthropic.Block{MediaType: p.Image.MediaType, Data: p.Image.Data})
			continue
		}
		blocks = append(blocks, anthropic.Block{Text: p.Text})
	}
	return blocks
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i := range req.Messages {
		geminiReq.Messages[i] = *convertToGeminiContent(&req.Messages[i])
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, newProviderError(a.Name(), err)
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage.InputTokens = resp.Usage.InputTokens
		usage.OutputTokens = resp.Usage.OutputTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// convertToGeminiContent maps roles onto Gemini's "user"/"model" pair.
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	role := msg.Role
	if role == RoleAssistant {
		role = "model"
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.Image != nil {
			parts[i] = gemini.Part{MimeType: p.Image.MediaType, ImageData: p.Image.Data}
		}
	}
	return &gemini.Content{Role: role, Parts: parts}
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider. name tells the
// compatible hosts (openai, deepseek, qwen) apart in logs and metrics.
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
}

func NewOpenAIAdapter(client openai.IOpenAI, name string) *OpenAIAdapter {
	if name == "" {
		name = "openai"
	}
	return &OpenAIAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		Messages:    make([]openai.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		openaiReq.System = req.SystemInstruction.Text()
	}
	for i, msg := range req.Messages {
		openaiReq.Messages[i] = toOpenAIMessage(msg)
	}

	resp, err := a.client.Complete(ctx, openaiReq)
	if err != nil {
		return nil, newProviderError(a.Name(), err)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIAdapter) Name() string {
	return a.name
}

func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func toOpenAIMessage(msg Message) openai.Message {
	out := openai.Message{Role: msg.Role}
	for _, p := range msg.Parts {
		if p.Image != nil {
			out.Images = append(out.Images, openai.Image{MediaType: p.Image.MediaType, Data: p.Image.Data})
			continue
		}
		out.Text += p.Text
	}
	return out
}
