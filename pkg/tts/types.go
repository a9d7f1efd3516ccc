package tts

// Voice defaults.
const (
	DefaultLanguageCode = "en-US"
	DefaultVoiceName    = "en-US-Neural2-D"
	DefaultGender       = "MALE"
	DefaultPitch        = 0.2
	DefaultSpeakingRate = 0.95

	audioEncoding = "MP3"
	dataURLPrefix = "data:audio/mp3;base64,"
)

// Voice selects the synthesized voice and how it is rendered.
type Voice struct {
	LanguageCode string
	Name         string
	Gender       string // MALE | FEMALE | NEUTRAL
	Pitch        float64
	SpeakingRate float64
}

// DefaultVoice is the strategist voice.
func DefaultVoice() Voice {
	return Voice{
		LanguageCode: DefaultLanguageCode,
		Name:         DefaultVoiceName,
		Gender:       DefaultGender,
		Pitch:        DefaultPitch,
		SpeakingRate: DefaultSpeakingRate,
	}
}

func (v Voice) withDefaults() Voice {
	d := DefaultVoice()
	if v.LanguageCode == "" {
		v.LanguageCode = d.LanguageCode
	}
	if v.Name == "" {
		v.Name = d.Name
	}
	if v.Gender == "" {
		v.Gender = d.Gender
	}
	if v.SpeakingRate == 0 {
		v.SpeakingRate = d.SpeakingRate
	}
	return v
}
