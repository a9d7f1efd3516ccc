// Package annotation extracts control markers from strategist replies and
// produces display and speech renditions of the text.
package annotation

import (
	"regexp"
	"strings"
)

var (
	emptyParens      = regexp.MustCompile(`\(\s*\)`)
	spaceAfterOpen   = regexp.MustCompile(`\(\s+`)
	spaceBeforeClose = regexp.MustCompile(`\s+\)`)
	spaceBeforePunct = regexp.MustCompile(`\s+([,.;:!?])`)
	repeatedComma    = regexp.MustCompile(`,(\s*,)+`)
	whitespaceRun    = regexp.MustCompile(`\s+`)

	stageDirection = regexp.MustCompile(`\*[^*]+\*`)
	emphasis       = regexp.MustCompile(`_[^_]+_`)
	bracketed      = regexp.MustCompile(`\[[^\]]+\]`)
	innerAside     = regexp.MustCompile(`\([^()]*\)`)
)

// Parse reads every marker in text and returns the structured reply.
// It never fails; unrecognised text passes through to DisplayMessage.
func Parse(text string) Reply {
	r := Reply{Mood: MoodIdle}

	for _, tok := range grammar {
		tok.apply(text, &r)
	}

	if r.EscalationRequested {
		r.ProfessionalCategory = inferCategory(text)
	}

	// Cleaning can join fragments back into a marker ("MO()OD:"), so strip
	// until nothing changes. Every pass only removes characters.
	display := Clean(stripMarkers(text))
	for {
		next := Clean(stripMarkers(display))
		if next == display {
			break
		}
		display = next
	}

	// Removing asides can do the same to speech.
	speech := SpeechText(display)
	for {
		next := SpeechText(stripMarkers(speech))
		if next == speech {
			break
		}
		speech = next
	}

	r.DisplayMessage = display
	r.SpeechText = speech
	return r
}

// Clean normalises display text: empty and unbalanced parentheses are
// dropped, padding inside parentheses and before punctuation removed,
// repeated commas merged, whitespace collapsed.
// Clean only ever removes characters and Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	s = removeEmptyParens(s)
	s = removeUnbalancedParens(s)
	s = removeEmptyParens(s)
	s = spaceAfterOpen.ReplaceAllString(s, "(")
	s = spaceBeforeClose.ReplaceAllString(s, ")")
	return collapse(tidyPunct(s))
}

// SpeechText strips stage directions (*...*), emphasis (_..._), bracketed
// notes and parenthetical asides so the text can be read aloud.
func SpeechText(display string) string {
	s := stageDirection.ReplaceAllString(display, "")
	s = emphasis.ReplaceAllString(s, "")
	s = bracketed.ReplaceAllString(s, "")
	for innerAside.MatchString(s) {
		s = innerAside.ReplaceAllString(s, "")
	}
	return collapse(tidyPunct(s))
}

func inferCategory(text string) Category {
	lower := strings.ToLower(text)
	for _, c := range categoryKeywords {
		for _, w := range c.words {
			if strings.Contains(lower, w) {
				return c.category
			}
		}
	}
	return CategoryNone
}

func removeEmptyParens(s string) string {
	for emptyParens.MatchString(s) {
		s = emptyParens.ReplaceAllString(s, "")
	}
	return s
}

// removeUnbalancedParens drops every '(' or ')' without a partner.
func removeUnbalancedParens(s string) string {
	if !strings.ContainsAny(s, "()") {
		return s
	}

	drop := make(map[int]bool)
	var open []int
	for i, ch := range s {
		switch ch {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				drop[i] = true
				continue
			}
			open = open[:len(open)-1]
		}
	}
	for _, i := range open {
		drop[i] = true
	}
	if len(drop) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if drop[i] {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func stripMarkers(s string) string {
	for _, tok := range grammar {
		s = tok.strip.ReplaceAllString(s, "")
	}
	return s
}

func tidyPunct(s string) string {
	s = spaceBeforePunct.ReplaceAllString(s, "$1")
	return repeatedComma.ReplaceAllString(s, ",")
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
