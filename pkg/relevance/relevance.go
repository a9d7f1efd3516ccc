// Package relevance keeps the search results whose titles share enough
// vocabulary with what the user asked about.
package relevance

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// MaxResults bounds every Filter result.
	MaxResults = 3

	minKeywordLen  = 2
	minScore       = 2
	minActionScore = 1
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Filter scores candidates against a Vocabulary. It is safe for concurrent
// use once built.
type Filter struct {
	stop     map[string]struct{}
	synonyms map[string][]string
	action   map[string]struct{}
}

// New builds a Filter from v. The tables are copied.
func New(v Vocabulary) *Filter {
	f := &Filter{
		stop:     toSet(v.StopWords),
		synonyms: make(map[string][]string, len(v.Synonyms)),
		action:   toSet(v.ActionWords),
	}
	for k, syns := range v.Synonyms {
		key := normalize(k)
		for _, syn := range syns {
			f.synonyms[key] = append(f.synonyms[key], normalize(syn))
		}
	}
	return f
}

// NewDefault builds a Filter over DefaultVocabulary.
func NewDefault() *Filter {
	return New(DefaultVocabulary())
}

// Filter returns at most MaxResults candidates relevant to the query.
//
// With no usable keywords the first MaxResults candidates are returned
// unchanged. When keywords exist but nothing passes the threshold only the
// first candidate is returned.
func (f *Filter) Filter(userQuery, searchTerm string, candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return []Candidate{}
	}

	keywords := f.keywords(userQuery + " " + searchTerm)
	if len(keywords) == 0 {
		return head(candidates, MaxResults)
	}

	ranked := f.rank(keywords, candidates)
	if len(ranked) == 0 {
		return head(candidates, 1)
	}

	out := make([]Candidate, 0, MaxResults)
	for _, r := range ranked {
		if len(out) == MaxResults {
			break
		}
		out = append(out, r.Candidate)
	}
	return out
}

// Rank returns every candidate that passes the threshold, best first.
// Ties keep input order.
func (f *Filter) Rank(userQuery, searchTerm string, candidates []Candidate) []Ranked {
	keywords := f.keywords(userQuery + " " + searchTerm)
	if len(keywords) == 0 {
		return nil
	}
	return f.rank(keywords, candidates)
}

// Keywords returns the expanded keyword set for text, sorted.
func (f *Filter) Keywords(text string) []string {
	set := f.keywords(text)
	out := make([]string, 0, len(set))
	for kw := range set {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

func (f *Filter) rank(keywords map[string]struct{}, candidates []Candidate) []Ranked {
	var ranked []Ranked
	for _, c := range candidates {
		score, action := f.score(c.Title, keywords)
		if score >= minScore || (score >= minActionScore && action) {
			ranked = append(ranked, Ranked{Candidate: c, Score: score, IsActionMatch: action})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func (f *Filter) keywords(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Fields(text) {
		base := normalize(part)
		if len(base) < minKeywordLen {
			continue
		}
		if _, stop := f.stop[base]; stop {
			continue
		}
		for _, kw := range f.expand(base) {
			set[kw] = struct{}{}
		}
	}
	return set
}

// score counts keywords whose expansion occurs in the title. A keyword
// counts once however many of its variants match.
func (f *Filter) score(title string, keywords map[string]struct{}) (int, bool) {
	lower := strings.ToLower(title)
	score := 0
	action := false
	for kw := range keywords {
		for _, variant := range f.expand(kw) {
			if strings.Contains(lower, variant) {
				score++
				if _, ok := f.action[kw]; ok {
					action = true
				}
				break
			}
		}
	}
	return score, action
}

func (f *Filter) expand(word string) []string {
	out := []string{word}
	for _, syn := range f.synonyms[word] {
		if syn != "" {
			out = append(out, syn)
		}
	}
	return out
}

func normalize(word string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(word), "")
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[normalize(w)] = struct{}{}
	}
	return set
}

func head(c []Candidate, n int) []Candidate {
	if len(c) < n {
		n = len(c)
	}
	out := make([]Candidate, n)
	copy(out, c[:n])
	return out
}
