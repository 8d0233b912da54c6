package rank

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kamusis/partner-cli/internal/profile"
)

type stubStore struct {
	profiles []profile.Profile
	err      error
	calls    int
}

func (s *stubStore) Load(_ context.Context, _ string) ([]profile.Profile, error) {
	s.calls++
	return s.profiles, s.err
}

func TestRank_FiltersAndSorts(t *testing.T) {
	profiles := []profile.Profile{
		{Name: "zero"},
		{Name: "one-a"},
		{Name: "three"},
		{Name: "one-b"},
		{Name: "two"},
	}
	scores := map[string]int{"zero": 0, "one-a": 1, "three": 3, "one-b": 1, "two": 2}
	m := MatcherFunc(func(p profile.Profile, _ []string) int { return scores[p.Name] })

	got := Rank(profiles, []string{"x"}, m)

	want := []string{"three", "two", "one-a", "one-b"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Profile.Name != name {
			t.Errorf("result %d = %s, want %s", i, got[i].Profile.Name, name)
		}
		if got[i].Score <= 0 {
			t.Errorf("result %d has non-positive score %d", i, got[i].Score)
		}
		if i > 0 && got[i-1].Score < got[i].Score {
			t.Errorf("results not sorted at %d", i)
		}
	}
}

func TestRank_EmptyInputs(t *testing.T) {
	if got := Rank(nil, []string{"x"}, SubstringMatcher{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	profiles := []profile.Profile{{Name: "Anna"}, {Name: "Bob"}}
	if got := Rank(profiles, []string{""}, SubstringMatcher{}); len(got) != 0 {
		t.Fatalf("empty keyword should match nothing, got %d", len(got))
	}
}

func TestRanker_Search(t *testing.T) {
	store := &stubStore{profiles: []profile.Profile{
		{Name: "Anna", Role: "Developer", Location: "Amsterdam", Posts: "Loves Java and Amsterdam events"},
		{Name: "Bob", Role: "Manager", Location: "Utrecht", Posts: "No tech posts"},
	}}
	r := New(store, nil, nil)

	got, err := r.Search(context.Background(), "Data.json", []string{"Amsterdam", "Developer"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Profile.Name != "Anna" || got[0].Score != 3 {
		t.Fatalf("unexpected results: %+v", got)
	}

	// Every search reloads the store.
	if _, err := r.Search(context.Background(), "Data.json", []string{"bob"}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("store loaded %d times, want 2", store.calls)
	}
}

func TestRanker_SearchStoreFailure(t *testing.T) {
	loadErr := &profile.LoadError{Source: "x.json", Kind: profile.ErrMalformed, Err: errors.New("bad")}
	r := New(&stubStore{err: loadErr}, nil, nil)

	got, err := r.Search(context.Background(), "x.json", []string{"x"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil results, got %#v", got)
	}
	if !errors.Is(err, profile.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestRanker_SearchMissingFile(t *testing.T) {
	r := New(profile.NewStore(), SubstringMatcher{}, nil)
	missing := filepath.Join(t.TempDir(), "Data.json")

	got, err := r.Search(context.Background(), missing, []string{"x"})
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
	if !errors.Is(err, profile.ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestRanker_SearchFromFileConcurrent(t *testing.T) {
	src := filepath.Join(t.TempDir(), "Data.json")
	data := `[
		{"name": "Anna", "role": "Developer", "location": "Amsterdam"},
		{"name": "Eva", "role": "Developer", "location": "Delft"},
		{"name": "Bob", "role": "Manager"}
	]`
	if err := os.WriteFile(src, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	r := New(profile.NewStore(), SubstringMatcher{}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Search(context.Background(), src, []string{"developer"})
			if err != nil {
				t.Errorf("Search: %v", err)
				return
			}
			if len(got) != 2 || got[0].Profile.Name != "Anna" || got[1].Profile.Name != "Eva" {
				t.Errorf("unexpected results: %+v", got)
			}
		}()
	}
	wg.Wait()
}
