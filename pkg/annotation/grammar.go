package annotation

import (
	"regexp"
	"strings"
)

type effect int

const (
	effectNone effect = iota
	effectProfessional
	effectDeepWork
	effectFramework
	effectVideo
	effectMood
)

// token is one marker of the reply grammar. detect finds the marker (group 1
// holds the value for valued markers), strip removes every occurrence.
type token struct {
	name   string
	detect *regexp.Regexp
	strip  *regexp.Regexp
	effect effect
}

// grammar lists markers in strip order: flags first, then line-valued markers.
var grammar = []token{
	{
		name:   "DIY_OK",
		strip:  regexp.MustCompile(`(?i)\bDIY_OK\b\s*[?:.,;!]?\s*`),
		effect: effectNone,
	},
	{
		name:   "PRO_RECOMMENDED",
		detect: regexp.MustCompile(`(?i)\bPRO_RECOMMENDED\b`),
		strip:  regexp.MustCompile(`(?i)\bPRO_RECOMMENDED\b\s*[?:.,;!]?\s*`),
		effect: effectProfessional,
	},
	{
		name:   "CLARITY_SPRINT_RECOMMENDED",
		detect: regexp.MustCompile(`(?i)\bCLARITY_SPRINT_RECOMMENDED\b`),
		strip:  regexp.MustCompile(`(?i)\bCLARITY_SPRINT_RECOMMENDED\b\s*[?:.,;!]?\s*`),
		effect: effectDeepWork,
	},
	{
		name:   "FRAMEWORK",
		detect: regexp.MustCompile(`(?i)FRAMEWORK:[ \t]*([^\n]*)`),
		strip:  regexp.MustCompile(`(?i)FRAMEWORK:[^\n]*`),
		effect: effectFramework,
	},
	{
		name:   "VIDEO_HELPFUL",
		detect: regexp.MustCompile(`(?i)VIDEO_HELPFUL:[ \t]*([^\n]*)`),
		strip:  regexp.MustCompile(`(?i)VIDEO_HELPFUL:[^\n]*`),
		effect: effectVideo,
	},
	{
		name:   "MOOD",
		detect: regexp.MustCompile(`(?i)MOOD:[ \t]*(\w+)`),
		strip:  regexp.MustCompile(`(?i)MOOD:[^\n]*`),
		effect: effectMood,
	},
}

// apply records the token's effect on r. Only the first occurrence counts.
func (t token) apply(text string, r *Reply) {
	if t.detect == nil {
		return
	}
	m := t.detect.FindStringSubmatch(text)
	if m == nil {
		return
	}

	var value string
	if len(m) > 1 {
		value = strings.TrimSpace(m[1])
	}

	switch t.effect {
	case effectProfessional:
		r.ProfessionalRequested = true
		r.EscalationRequested = true
	case effectDeepWork:
		r.DeepWorkRequested = true
		r.EscalationRequested = true
	case effectFramework:
		r.FrameworkName = value
	case effectVideo:
		r.VideoQuery = value
	case effectMood:
		if value != "" {
			r.Mood = strings.ToLower(value)
		}
	}
}

// categoryKeywords is scanned in order; the first hit wins.
var categoryKeywords = []struct {
	category Category
	words    []string
}{
	{CategoryElectrician, []string{"electrician"}},
	{CategoryPlumber, []string{"plumber"}},
	{CategoryMechanic, []string{"mechanic"}},
	{CategoryTherapist, []string{"therapist", "counselor"}},
	{CategoryLawyer, []string{"lawyer", "attorney"}},
}
