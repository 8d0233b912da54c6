package rank

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kamusis/partner-cli/internal/profile"
)

// Matcher computes a relevance score for a profile given keywords.
// Scores are never negative.
type Matcher interface {
	Score(p profile.Profile, keywords []string) int
}

// MatcherFunc adapts an ordinary function to a Matcher.
type MatcherFunc func(p profile.Profile, keywords []string) int

// Score calls f(p, keywords).
func (f MatcherFunc) Score(p profile.Profile, keywords []string) int {
	return f(p, keywords)
}

// SubstringMatcher scores a profile by counting case-insensitive,
// non-overlapping keyword occurrences in its name, role, location and posts.
type SubstringMatcher struct{}

// Score sums CountOccurrences over every scorable field and every keyword.
func (SubstringMatcher) Score(p profile.Profile, keywords []string) int {
	// Casers carry state and must not be shared across goroutines.
	lower := cases.Lower(language.Und)

	kws := make([]string, len(keywords))
	for i, k := range keywords {
		kws[i] = lower.String(k)
	}

	score := 0
	for _, field := range p.Fields() {
		if field == "" {
			continue
		}
		text := lower.String(field)
		for _, k := range kws {
			score += countLowered(text, k)
		}
	}
	return score
}

// CountOccurrences returns the number of non-overlapping occurrences of keyword
// in text, scanning left to right and ignoring case. An empty text or keyword
// counts as zero.
func CountOccurrences(text, keyword string) int {
	lower := cases.Lower(language.Und)
	return countLowered(lower.String(text), lower.String(keyword))
}

func countLowered(text, keyword string) int {
	if text == "" || keyword == "" {
		return 0
	}
	// strings.Count resumes after each match, so "aa" in "aaaa" is 2.
	return strings.Count(text, keyword)
}
