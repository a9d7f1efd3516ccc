package annotation

// Category is the kind of professional a reply suggests consulting.
type Category string

const (
	CategoryNone        Category = ""
	CategoryElectrician Category = "electrician"
	CategoryPlumber     Category = "plumber"
	CategoryMechanic    Category = "mechanic"
	CategoryTherapist   Category = "therapist"
	CategoryLawyer      Category = "lawyer"
)

// Moods the strategist avatar knows how to render. Parse accepts any word;
// these are the values the prompt asks the model to choose from.
const (
	MoodIdle        = "idle"
	MoodListening   = "listening"
	MoodThinking    = "thinking"
	MoodAnalyzing   = "analyzing"
	MoodExplaining  = "explaining"
	MoodConcerned   = "concerned"
	MoodEncouraging = "encouraging"
	MoodConfident   = "confident"
	MoodSurprised   = "surprised"
	MoodChallenging = "challenging"
)

// Reply is the structured result of parsing raw model output.
type Reply struct {
	// DisplayMessage is the text shown to the user, markers removed.
	DisplayMessage string
	// SpeechText is DisplayMessage without stage directions or asides.
	SpeechText string

	EscalationRequested bool
	DeepWorkRequested   bool
	// ProfessionalRequested is set only by the professional marker;
	// EscalationRequested also covers the deep-work marker.
	ProfessionalRequested bool

	FrameworkName        string
	VideoQuery           string
	Mood                 string
	ProfessionalCategory Category
}

// HasFramework reports whether a framework marker carried a value.
func (r Reply) HasFramework() bool { return r.FrameworkName != "" }

// HasVideoQuery reports whether a video marker carried a value.
func (r Reply) HasVideoQuery() bool { return r.VideoQuery != "" }
