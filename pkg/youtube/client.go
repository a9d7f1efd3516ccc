package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"strategy-shop/pkg/relevance"
)

var (
	ErrMissingAPIKey = errors.New("youtube: API key is required")
	ErrEmptyQuery    = errors.New("youtube: query is required")
)

// Client wraps the YouTube Data API search endpoint.
type Client struct {
	service *yt.Service
	cfg     Config
	// callOpts carry the API key when the service is built on a caller's
	// HTTP client, which bypasses option.WithAPIKey.
	callOpts []googleapi.CallOption
}

// NewClient creates a YouTube client authenticated with an API key.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	svc, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}
	return &Client{service: svc, cfg: cfg.withDefaults()}, nil
}

// NewClientFromHTTP creates a YouTube client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, cfg Config) (*Client, error) {
	svc, err := yt.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}
	c := &Client{service: svc, cfg: cfg.withDefaults()}
	if cfg.APIKey != "" {
		c.callOpts = append(c.callOpts, googleapi.QueryParameter("key", cfg.APIKey))
	}
	return c, nil
}

// Search returns up to MaxResults videos for query, in YouTube's relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]relevance.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := c.service.Search.List([]string{searchPart}).
		Q(query).
		Type(searchType).
		MaxResults(c.cfg.MaxResults).
		SafeSearch(c.cfg.SafeSearch).
		Order(searchOrder).
		Context(ctx).
		Do(c.callOpts...)
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, &APIError{StatusCode: gerr.Code, Message: gerr.Message}
		}
		return nil, fmt.Errorf("youtube: search: %w", err)
	}

	videos := make([]relevance.Candidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, relevance.Candidate{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelName:  item.Snippet.ChannelTitle,
			ThumbnailURL: mediumThumbnail(item.Snippet.Thumbnails),
		})
	}
	return videos, nil
}

func mediumThumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*yt.Thumbnail{t.Medium, t.Default, t.High} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
