package anthropic

import "time"

const (
	// DefaultModel is widely available on every account tier.
	DefaultModel = "claude-3-haiku-20240307"

	// DefaultAPIURL is the Messages API endpoint.
	DefaultAPIURL = "https://api.anthropic.com/v1/messages"

	// APIVersion is sent in the anthropic-version header.
	APIVersion = "2023-06-01"

	// DefaultMaxTokens keeps replies short and conversational.
	DefaultMaxTokens = 300

	DefaultTimeout = 60 * time.Second
)
