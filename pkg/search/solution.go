package search

import "acrostic/pkg/letter"

// Solution is a mutable work-in-progress attribution: Words[i] is the
// multiset currently assigned to slot i, Remainder is what's left of the
// quote once every word is subtracted out.
type Solution struct {
	Attribution []letter.Letter
	Words       []letter.Set
	Remainder   letter.Set
}

// newSolution builds the initial one-letter-per-slot assignment for a
// quote and attribution, or ok=false if some attribution letter isn't
// available in the quote even once.
func newSolution(quote letter.Set, attribution []letter.Letter) (Solution, bool) {
	words := make([]letter.Set, len(attribution))
	remainder := quote
	for i, l := range attribution {
		var w letter.Set
		w[l] = 1
		if !w.IsSubset(remainder) {
			return Solution{}, false
		}
		words[i] = w
		remainder = remainder.Sub(w)
	}
	return Solution{Attribution: attribution, Words: words, Remainder: remainder}, true
}

// setWord replaces slot i, asserting the multiset bookkeeping stays
// consistent: the new word must be a subset of (remainder + old word).
func (s *Solution) setWord(i int, word letter.Set) {
	available := s.Remainder.Add(s.Words[i])
	if !word.IsSubset(available) {
		panic("search: setWord violates the subset invariant")
	}
	s.Remainder = available.Sub(word)
	s.Words[i] = word
}

// isDone reports whether the solution is complete: no remainder, every
// word has at least two letters, and no two words repeat the same
// multiset.
func (s *Solution) isDone() bool {
	if !s.Remainder.Empty() {
		return false
	}
	seen := make(map[letter.Set]bool, len(s.Words))
	for _, w := range s.Words {
		if w.Count() < 2 {
			return false
		}
		if seen[w] {
			return false
		}
		seen[w] = true
	}
	return true
}

// clone returns a deep-enough copy for a randomize/optimize attempt that
// might be discarded.
func (s Solution) clone() Solution {
	words := make([]letter.Set, len(s.Words))
	copy(words, s.Words)
	return Solution{Attribution: s.Attribution, Words: words, Remainder: s.Remainder}
}
