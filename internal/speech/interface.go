package speech

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Synthesize(ctx context.Context, input SynthesizeInput) (SynthesizeOutput, error)
}

// Synthesizer renders prepared text (plain or SSML) as an audio data URL.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}
