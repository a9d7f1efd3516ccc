package model

// Topic is one of the fixed conversation themes.
type Topic string

const (
	TopicPricingRevenue    Topic = "pricing-revenue"
	TopicGrowthMarketing   Topic = "growth-marketing"
	TopicTeamHiring        Topic = "team-hiring"
	TopicStrategyDirection Topic = "strategy-direction"
	TopicOperationsSystems Topic = "operations-systems"
	TopicGeneralBusiness   Topic = "general-business"
)

// TopicInfo describes a topic for the topic picker and the system prompt.
type TopicInfo struct {
	ID          Topic
	Title       string
	Emoji       string
	Description string
	Context     string
	Greeting    string
}

var topics = []TopicInfo{
	{
		ID:          TopicPricingRevenue,
		Title:       "Pricing & Revenue",
		Emoji:       "💰",
		Description: "Should I raise prices? Am I leaving money on the table?",
		Context:     "Strategic pricing decisions that impact your bottom line",
		Greeting:    "Let's talk pricing strategy. What's got you thinking about your pricing right now?",
	},
	{
		ID:          TopicGrowthMarketing,
		Title:       "Growth & Marketing",
		Emoji:       "📈",
		Description: "Where should I focus? Should I niche down or stay broad?",
		Context:     "Focused growth strategies for sustainable scaling",
		Greeting:    "Growth and marketing - where most businesses get stuck. What's your biggest challenge at the moment?",
	},
	{
		ID:          TopicTeamHiring,
		Title:       "Team & Hiring",
		Emoji:       "👥",
		Description: "When should I hire? How do I structure my team?",
		Context:     "Building and managing the right team for your stage",
		Greeting:    "Team decisions are never easy. What's on your mind - hiring someone new, or dealing with a current situation?",
	},
	{
		ID:          TopicStrategyDirection,
		Title:       "Strategy & Direction",
		Emoji:       "🎯",
		Description: "Should I pivot or persevere? What's my 90-day focus?",
		Context:     "Big picture decisions and strategic clarity",
		Greeting:    "Big picture strategy time. What decision are you wrestling with?",
	},
	{
		ID:          TopicOperationsSystems,
		Title:       "Operations & Systems",
		Emoji:       "⚡",
		Description: "How do I scale without burning out? What systems do I need?",
		Context:     "Systems and processes that enable growth",
		Greeting:    "Operations and systems - the unsexy stuff that actually scales businesses. What's breaking or missing right now?",
	},
	{
		ID:          TopicGeneralBusiness,
		Title:       "General Business",
		Emoji:       "💼",
		Description: "Everything else - unique situations and challenges",
		Context:     "All other business challenges and decisions",
		Greeting:    "Hey! What's the toughest business decision you're facing right now?",
	},
}

// Topics returns the catalogue in display order.
func Topics() []TopicInfo {
	out := make([]TopicInfo, len(topics))
	copy(out, topics)
	return out
}

// LookupTopic returns the catalogue entry for id.
func LookupTopic(id Topic) (TopicInfo, bool) {
	for _, t := range topics {
		if t.ID == id {
			return t, true
		}
	}
	return TopicInfo{}, false
}

// IsValid reports whether t is in the catalogue.
func (t Topic) IsValid() bool {
	_, ok := LookupTopic(t)
	return ok
}
