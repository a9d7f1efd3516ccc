package youtube

import "fmt"

// Search defaults.
const (
	DefaultMaxResults = 3
	DefaultSafeSearch = "strict"

	searchPart  = "snippet"
	searchType  = "video"
	searchOrder = "relevance"
)

// Config holds search options.
type Config struct {
	APIKey     string
	MaxResults int64
	SafeSearch string // none | moderate | strict
}

func (c Config) withDefaults() Config {
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.SafeSearch == "" {
		c.SafeSearch = DefaultSafeSearch
	}
	return c
}

// APIError is a non-2xx reply from the YouTube Data API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube: api error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the upstream status code.
func (e *APIError) HTTPStatus() int { return e.StatusCode }
