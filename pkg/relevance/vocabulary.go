package relevance

// DefaultVocabulary returns the business vocabulary plus the older home and
// auto repair terms. Each call returns fresh slices and maps.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		StopWords: []string{
			"the", "a", "an", "and", "or", "but", "if", "then", "than", "to", "of", "for", "in", "on", "at", "with", "by", "about",
			"is", "are", "was", "were", "be", "being", "been", "have", "has", "had", "do", "does", "did", "this", "that", "these", "those",
			"it", "its", "as", "from", "up", "down", "out", "over", "under",
		},
		Synonyms: map[string][]string{
			"pricing":    {"price", "revenue", "monetization"},
			"marketing":  {"growth", "acquisition", "advertising"},
			"hiring":     {"recruiting", "talent", "team"},
			"strategy":   {"planning", "direction", "roadmap"},
			"operations": {"systems", "processes", "workflow"},
			"business":   {"company", "startup", "entrepreneur"},

			"tire":     {"tyre", "wheel"},
			"tyres":    {"tire"},
			"fix":      {"repair", "replace", "change"},
			"change":   {"replace", "swap"},
			"car":      {"vehicle", "auto"},
			"flat":     {"puncture"},
			"tutorial": {"guide", "walkthrough", "step"},
			"jack":     {"lift"},
		},
		ActionWords: []string{
			"strategy", "pricing", "marketing", "growth", "hiring", "scaling", "framework", "model", "plan",
			"fix", "repair", "replace", "change", "install", "remove", "how", "tutorial", "step", "guide", "tighten",
		},
	}
}
