package relevance

// Candidate is a search result as returned by the video search backend.
type Candidate struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelName  string `json:"channel_title"`
	ThumbnailURL string `json:"thumbnail"`
}

// Ranked is a candidate that passed the relevance threshold.
type Ranked struct {
	Candidate     Candidate
	Score         int
	IsActionMatch bool
}

// Vocabulary holds the word tables used for keyword extraction and scoring.
type Vocabulary struct {
	StopWords   []string
	Synonyms    map[string][]string
	ActionWords []string
}
