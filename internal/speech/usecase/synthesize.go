package usecase

import (
	"context"
	"errors"
	"strings"

	"strategy-shop/internal/speech"
	"strategy-shop/pkg/cache"
	"strategy-shop/pkg/metrics"
	"strategy-shop/pkg/speechtext"
)

const cacheNamespace = "tts"

// Synthesize prepares text for speech and returns the audio, reusing a
// cached rendering of the same prepared text when one exists.
func (uc *implUseCase) Synthesize(ctx context.Context, input speech.SynthesizeInput) (speech.SynthesizeOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return speech.SynthesizeOutput{}, speech.ErrEmptyText
	}
	if len(text) > speech.MaxTextLength {
		return speech.SynthesizeOutput{}, speech.ErrTextTooLong
	}
	if uc.synth == nil {
		return speech.SynthesizeOutput{}, speech.ErrDisabled
	}

	prepared := text
	if !speechtext.IsSSML(text) {
		prepared = speechtext.Prepare(text)
	}
	key := cache.Key(cacheNamespace, prepared)

	if url, ok := uc.lookup(ctx, key); ok {
		return speech.SynthesizeOutput{AudioURL: url, Cached: true}, nil
	}

	url, err := uc.synth.Synthesize(ctx, prepared)
	if err != nil {
		uc.l.Errorf(ctx, "speech.usecase.Synthesize: %v", err)
		return speech.SynthesizeOutput{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, []byte(url)); err != nil {
			uc.l.Warnf(ctx, "speech.usecase.Synthesize: cache set: %v", err)
		}
	}
	return speech.SynthesizeOutput{AudioURL: url}, nil
}

func (uc *implUseCase) lookup(ctx context.Context, key string) (string, bool) {
	if uc.cache == nil {
		return "", false
	}
	b, err := uc.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.AudioCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return string(b), true
	case !errors.Is(err, cache.ErrCacheMiss):
		uc.l.Warnf(ctx, "speech.usecase.Synthesize: cache get: %v", err)
	}
	metrics.AudioCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	return "", false
}
