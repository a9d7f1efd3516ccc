package usecase

import (
	"encoding/base64"
	"strings"

	"strategy-shop/internal/conversation"
	"strategy-shop/pkg/llmprovider"
)

// parseImageDataURL splits data:<media-type>;base64,<data>. An empty input
// yields no image.
func parseImageDataURL(raw string) (*llmprovider.Image, error) {
	if raw == "" {
		return nil, nil
	}

	rest, ok := strings.CutPrefix(raw, "data:")
	if !ok {
		return nil, conversation.ErrInvalidImage
	}
	mediaType, data, ok := strings.Cut(rest, ";base64,")
	if !ok || !strings.HasPrefix(mediaType, "image/") || data == "" {
		return nil, conversation.ErrInvalidImage
	}
	if base64.StdEncoding.DecodedLen(len(data)) > MaxImageBytes {
		return nil, conversation.ErrInvalidImage
	}
	if _, err := base64.StdEncoding.DecodeString(data); err != nil {
		return nil, conversation.ErrInvalidImage
	}
	return &llmprovider.Image{MediaType: mediaType, Data: data}, nil
}
