package rank

import (
	"context"
	"log/slog"
	"sort"

	"github.com/kamusis/partner-cli/internal/profile"
)

// Rank scores every profile, drops those scoring zero and sorts the rest by
// score descending. Profiles with equal scores keep their input order.
// The returned slice is never nil.
func Rank(profiles []profile.Profile, keywords []string, m Matcher) []Result {
	out := make([]Result, 0, len(profiles))
	for _, p := range profiles {
		score := m.Score(p, keywords)
		if score <= 0 {
			continue
		}
		out = append(out, Result{Profile: p, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Ranker runs searches against a profile store.
// It holds no per-search state and is safe for concurrent use.
type Ranker struct {
	store   profile.Store
	matcher Matcher
	log     *slog.Logger
}

// New returns a Ranker. A nil matcher defaults to SubstringMatcher and a nil
// logger discards output.
func New(store profile.Store, m Matcher, log *slog.Logger) *Ranker {
	if m == nil {
		m = SubstringMatcher{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Ranker{store: store, matcher: m, log: log}
}

// Search loads every profile from source and ranks it against keywords.
//
// When the store cannot supply profiles the result is empty, exactly as if
// nothing matched, and the returned error (a *profile.LoadError) says why.
// Callers that only care about matches may ignore the error.
func (r *Ranker) Search(ctx context.Context, source string, keywords []string) ([]Result, error) {
	profiles, err := r.store.Load(ctx, source)
	if err != nil {
		r.log.Warn("profile source unavailable", "source", source, "error", err)
		return []Result{}, err
	}

	results := Rank(profiles, keywords, r.matcher)
	r.log.Debug("search complete",
		"source", source,
		"keywords", keywords,
		"profiles", len(profiles),
		"matches", len(results))
	return results, nil
}
