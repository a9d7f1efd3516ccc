package tts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/texttospeech/v1"
)

// ErrEmptyText is returned when there is nothing to synthesize.
var ErrEmptyText = errors.New("tts: text is required")

// Client wraps the Google Cloud Text-to-Speech API service.
type Client struct {
	service *texttospeech.Service
	voice   Voice
}

// NewClientFromCredentialsFile creates a TTS client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, voice Voice) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("tts: failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, voice)
}

// NewClientFromCredentialsJSON creates a TTS client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, voice Voice) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, texttospeech.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("tts: invalid service account credentials: %w", err)
	}

	svc, err := texttospeech.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("tts: failed to create service: %w", err)
	}
	return &Client{service: svc, voice: voice.withDefaults()}, nil
}

// NewClientFromHTTP creates a TTS client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, voice Voice) (*Client, error) {
	svc, err := texttospeech.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("tts: failed to create service: %w", err)
	}
	return &Client{service: svc, voice: voice.withDefaults()}, nil
}

// Synthesize renders text as MP3 and returns it as a data URL. Text that
// begins with <speak> is sent as SSML.
func (c *Client) Synthesize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	input := &texttospeech.SynthesisInput{Text: text}
	if strings.HasPrefix(text, "<speak>") {
		input = &texttospeech.SynthesisInput{Ssml: text}
	}

	req := &texttospeech.SynthesizeSpeechRequest{
		Input: input,
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: c.voice.LanguageCode,
			Name:         c.voice.Name,
			SsmlGender:   c.voice.Gender,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: audioEncoding,
			Pitch:         c.voice.Pitch,
			SpeakingRate:  c.voice.SpeakingRate,
		},
	}

	resp, err := c.service.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return "", wrapError(err)
	}
	if resp.AudioContent == "" {
		return "", errors.New("tts: empty audio content")
	}

	// AudioContent is already base64 on the wire.
	return dataURLPrefix + resp.AudioContent, nil
}

// APIError is a non-2xx reply from the Text-to-Speech API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tts: api error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the upstream status code.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

func wrapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{StatusCode: gerr.Code, Message: gerr.Message}
	}
	return fmt.Errorf("tts: synthesize: %w", err)
}
