package speech

// MaxTextLength bounds a single synthesis request.
const MaxTextLength = 5000

type SynthesizeInput struct {
	Text string
}

type SynthesizeOutput struct {
	AudioURL string
	Cached   bool
}
