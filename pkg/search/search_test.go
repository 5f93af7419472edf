package search

import (
	"context"
	"testing"

	"acrostic/pkg/dictionary"
	"acrostic/pkg/index"
	"acrostic/pkg/letter"
	"acrostic/pkg/trietable"
)

func buildTestSearch(t *testing.T, words ...string) *Search {
	t.Helper()
	var dwords []dictionary.Word
	for i, w := range words {
		dwords = append(dwords, dictionary.NewWord(w, uint64(1000-i)))
	}
	d := &dictionary.Dictionary{Words: dwords}

	dir := t.TempDir()
	if err := index.Build(dir, d, nil); err != nil {
		t.Fatalf("index.Build: %v", err)
	}
	table, err := trietable.New(dir)
	if err != nil {
		t.Fatalf("trietable.New: %v", err)
	}
	t.Cleanup(func() { table.Close() })

	return New(table, d, nil)
}

func TestRNGDeterministic(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 100; i++ {
		if a.next() != b.next() {
			t.Fatalf("two RNGs with the same seed diverged at step %d", i)
		}
	}
}

func TestSolveSatisfiesInvariants(t *testing.T) {
	s := buildTestSearch(t, "catnip", "napkin", "sailor", "listens", "orbiter", "tribune")

	quote := letter.FromString("catnip").
		Add(letter.FromString("sailor")).
		Add(letter.FromString("orbiter"))
	attribution := []letter.Letter{letter.New('c'), letter.New('s'), letter.New('o')}

	sol, err := s.Solve(context.Background(), quote, attribution, 1, 4)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if !sol.Remainder.Empty() {
		t.Fatalf("expected an empty remainder, got %v", sol.Remainder)
	}
	combined := letter.Set{}
	for i, w := range sol.Words {
		if w.Count() == 0 {
			t.Fatalf("slot %d is empty", i)
		}
		if w.Get(attribution[i]) == 0 {
			t.Fatalf("slot %d does not start with its attribution letter", i)
		}
		combined = combined.Add(w)
	}
	if !combined.Equal(quote) {
		t.Fatalf("combined words %v != quote %v", combined, quote)
	}
}

func TestSolveInfeasibleSeedReportsImmediately(t *testing.T) {
	s := buildTestSearch(t, "catnip", "napkin")

	quote := letter.FromString("catnip")
	attribution := []letter.Letter{letter.New('z')}

	_, err := s.Solve(context.Background(), quote, attribution, 1, 2)
	if err != ErrInfeasible {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}

func TestMaterializeFindsDictionaryWords(t *testing.T) {
	s := buildTestSearch(t, "catnip", "napkin")
	sol := Solution{
		Attribution: []letter.Letter{letter.New('c')},
		Words:       []letter.Set{letter.FromString("catnip")},
	}
	words, ok := s.Materialize(sol)
	if !ok {
		t.Fatalf("expected materialization to succeed")
	}
	if words[0].Spelling != "catnip" {
		t.Fatalf("expected catnip, got %q", words[0].Spelling)
	}
}

func TestSolutionIsDoneRejectsDuplicateWords(t *testing.T) {
	sol := Solution{
		Words: []letter.Set{letter.FromString("cat"), letter.FromString("cat")},
	}
	if sol.isDone() {
		t.Fatalf("a solution with duplicate words must not be done")
	}
}
