// Package speechtext turns a chat reply into SSML that reads naturally when
// synthesized: emoji removed, abbreviations and small numbers spelled out,
// symbols spoken, and pauses inserted after punctuation.
package speechtext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	speakOpen  = "<speak>"
	speakClose = "</speak>"
)

var (
	emojiRe = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}` +
		`\x{2600}-\x{26FF}\x{2700}-\x{27BF}\x{1F900}-\x{1F9FF}\x{1FA00}-\x{1FA6F}\x{1FA70}-\x{1FAFF}\x{FE00}-\x{FE0F}]`)
	spaceRe  = regexp.MustCompile(`\s+`)
	numberRe = regexp.MustCompile(`\b\d+\b`)
	parenRe  = regexp.MustCompile(`\([^)]*\)`)
	dropRe   = regexp.MustCompile("[\"`()\\[\\]{}<>©®™]")
	dashRe   = regexp.MustCompile(`[–—]`)

	abbreviationRes = compileAbbreviations()
)

type abbreviationRe struct {
	re     *regexp.Regexp
	spoken string
}

func compileAbbreviations() []abbreviationRe {
	out := make([]abbreviationRe, 0, len(abbreviations))
	for _, a := range abbreviations {
		pattern := `(?i)\b` + regexp.QuoteMeta(a.written)
		// A trailing \b after a dot would require a letter to follow.
		if !strings.HasSuffix(a.written, ".") {
			pattern += `\b`
		}
		out = append(out, abbreviationRe{re: regexp.MustCompile(pattern), spoken: a.spoken})
	}
	return out
}

// Prepare returns SSML for text, wrapped in <speak>.
func Prepare(text string) string {
	s := RemoveEmoji(text)
	s = ExpandAbbreviations(s)
	s = SpellNumbers(s)
	s = CleanSymbols(s)
	return speakOpen + addPauses(s) + speakClose
}

// IsSSML reports whether text is already an SSML document.
func IsSSML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), speakOpen)
}

// RemoveEmoji strips emoji and variation selectors and collapses whitespace.
func RemoveEmoji(text string) string {
	return collapse(emojiRe.ReplaceAllString(text, ""))
}

// ExpandAbbreviations rewrites known abbreviations and units to spoken form.
func ExpandAbbreviations(text string) string {
	for _, a := range abbreviationRes {
		text = a.re.ReplaceAllLiteralString(text, a.spoken)
	}
	return text
}

// SpellNumbers writes standalone integers 0-20 as words and whole thousands
// below one million as "<n> thousand". Decimals and grouped numbers such as
// "3.5" or "1,200" are left alone.
func SpellNumbers(text string) string {
	matches := numberRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(text[last:start])
		last = end

		digits := text[start:end]
		if partOfLargerNumber(text, start, end) {
			b.WriteString(digits)
			continue
		}
		b.WriteString(spellNumber(digits))
	}
	b.WriteString(text[last:])
	return b.String()
}

func spellNumber(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return digits
	}
	switch {
	case n >= 0 && n <= 20:
		return numberWords[n]
	case n >= 1000 && n < 1000000 && n%1000 == 0:
		return smallNumber(n/1000) + " thousand"
	default:
		return digits
	}
}

func smallNumber(n int) string {
	if n >= 0 && n <= 20 {
		return numberWords[n]
	}
	return strconv.Itoa(n)
}

// partOfLargerNumber reports whether text[start:end] is joined to another
// digit run by "." or ",".
func partOfLargerNumber(text string, start, end int) bool {
	if start >= 2 && isSeparator(text[start-1]) && isDigit(text[start-2]) {
		return true
	}
	if end+1 < len(text) && isSeparator(text[end]) && isDigit(text[end+1]) {
		return true
	}
	return false
}

func isSeparator(c byte) bool { return c == '.' || c == ',' }
func isDigit(c byte) bool     { return c >= '0' && c <= '9' }

// CleanSymbols removes quotes, parentheticals, brackets and trademark signs,
// normalizes ellipses and dashes, and speaks & @ # $ %.
func CleanSymbols(text string) string {
	s := parenRe.ReplaceAllString(text, "")
	s = dropRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "…", "...")
	s = dashRe.ReplaceAllString(s, "-")
	for _, sw := range symbolWords {
		s = strings.ReplaceAll(s, sw.symbol, sw.word)
	}
	return collapse(s)
}

func addPauses(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		b.WriteRune(r)
		for _, p := range pauses {
			if string(r) == p.mark {
				fmt.Fprintf(&b, `<break time="%dms"/>`, p.ms)
				break
			}
		}
	}
	return b.String()
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
