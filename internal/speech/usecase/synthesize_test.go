package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"strategy-shop/internal/speech"
	"strategy-shop/pkg/cache"
	"strategy-shop/pkg/log"
)

type fakeSynth struct {
	calls []string
	err   error
}

func (f *fakeSynth) Synthesize(_ context.Context, text string) (string, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return "", f.err
	}
	return "data:audio/mp3;base64,QUJD", nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, error) { return nil, errors.New("down") }
func (brokenCache) Set(context.Context, string, []byte) error  { return errors.New("down") }
func (brokenCache) Delete(context.Context, string) error        { return nil }
func (brokenCache) Close() error                                { return nil }

func TestSynthesize_PreparesAndCaches(t *testing.T) {
	synth := &fakeSynth{}
	uc := New(synth, cache.NewMemory(10, time.Minute), log.NewNop())
	ctx := context.Background()

	out, err := uc.Synthesize(ctx, speech.SynthesizeInput{Text: "Hit 5 goals, etc."})
	if err != nil {
		t.Fatal(err)
	}
	if out.Cached || out.AudioURL == "" {
		t.Errorf("unexpected first output %+v", out)
	}
	if len(synth.calls) != 1 || !strings.HasPrefix(synth.calls[0], "<speak>") {
		t.Fatalf("expected prepared SSML, got %v", synth.calls)
	}
	if !strings.Contains(synth.calls[0], "five") || !strings.Contains(synth.calls[0], "etcetera") {
		t.Errorf("text not prepared: %q", synth.calls[0])
	}

	again, err := uc.Synthesize(ctx, speech.SynthesizeInput{Text: "Hit 5 goals, etc."})
	if err != nil {
		t.Fatal(err)
	}
	if !again.Cached || again.AudioURL != out.AudioURL {
		t.Errorf("expected cached output, got %+v", again)
	}
	if len(synth.calls) != 1 {
		t.Errorf("synthesizer called %d times, want 1", len(synth.calls))
	}
}

func TestSynthesize_SSMLPassesThrough(t *testing.T) {
	synth := &fakeSynth{}
	uc := New(synth, nil, log.NewNop())

	ssml := "<speak>Already 5 marked up.</speak>"
	if _, err := uc.Synthesize(context.Background(), speech.SynthesizeInput{Text: ssml}); err != nil {
		t.Fatal(err)
	}
	if synth.calls[0] != ssml {
		t.Errorf("SSML must not be rewritten, got %q", synth.calls[0])
	}
}

func TestSynthesize_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		uc   speech.UseCase
		text string
		want error
	}{
		{name: "empty", uc: New(&fakeSynth{}, nil, log.NewNop()), text: "  ", want: speech.ErrEmptyText},
		{name: "too long", uc: New(&fakeSynth{}, nil, log.NewNop()), text: strings.Repeat("a", speech.MaxTextLength+1), want: speech.ErrTextTooLong},
		{name: "disabled", uc: New(nil, nil, log.NewNop()), text: "hello", want: speech.ErrDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.uc.Synthesize(ctx, speech.SynthesizeInput{Text: tt.text}); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	upstream := errors.New("quota exceeded")
	uc := New(&fakeSynth{err: upstream}, nil, log.NewNop())
	if _, err := uc.Synthesize(ctx, speech.SynthesizeInput{Text: "hello"}); !errors.Is(err, upstream) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestSynthesize_CacheFailureIsNotFatal(t *testing.T) {
	synth := &fakeSynth{}
	uc := New(synth, brokenCache{}, log.NewNop())

	out, err := uc.Synthesize(context.Background(), speech.SynthesizeInput{Text: "hello"})
	if err != nil || out.AudioURL == "" {
		t.Fatalf("expected audio despite cache failure, got %+v, %v", out, err)
	}
}
