package usecase

import (
	"fmt"
	"strings"

	"strategy-shop/internal/model"
)

// systemPrompt renders the strategist persona for topic, adding whatever is
// known about the caller's business.
func systemPrompt(topic model.Topic, p model.Profile) string {
	var b strings.Builder
	for _, f := range []struct{ label, value string }{
		{"Business type", p.BusinessType},
		{"Revenue range", p.Revenue},
		{"Team size", p.TeamSize},
		{"Known challenge", p.BiggestChallenge},
	} {
		if v := strings.TrimSpace(f.value); v != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.label, v)
		}
	}
	return fmt.Sprintf(systemPromptTemplate, strings.ToUpper(string(topic)), b.String())
}

func nextStep(conversationCount int) string {
	switch {
	case conversationCount >= 5:
		return nextStepDeep
	case conversationCount >= 3:
		return nextStepProgress
	default:
		return nextStepStart
	}
}
