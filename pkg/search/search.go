package search

import (
	"acrostic/pkg/config"
	"acrostic/pkg/dictionary"
	"acrostic/pkg/letter"
	"acrostic/pkg/trie"
	"acrostic/pkg/trietable"
)

// DefaultMaxAnneal is the anneal loop's default retry bound (spec §4.4).
const DefaultMaxAnneal = 10

// DefaultStartMaxLen is the optimize loop's default starting max_len
// (spec §4.4's "for max_len ∈ 6, 7, 8, …").
const DefaultStartMaxLen = 6

// Search bundles the loaded indexes a solve needs: the trie table for
// subset queries, the dictionary (plus its accelerator) for
// materializing a finished solution back into real words, and a
// per-solve pair cache shared by every seed.
type Search struct {
	table *trietable.Table
	dict  *dictionary.Dictionary
	accel *dictionary.Accelerator
	cache *pairCache

	maxSeeds    int
	maxAnneal   int
	startMaxLen int
}

// New builds a Search over a loaded trie table and dictionary. Call once
// per puzzle solve; the returned Search (and its cache) is shared across
// every seed in the sweep. cfg may be nil, in which case MaxSeeds,
// DefaultMaxAnneal, and DefaultStartMaxLen apply.
func New(table *trietable.Table, dict *dictionary.Dictionary, cfg *config.SolverConfig) *Search {
	s := &Search{
		table:       table,
		dict:        dict,
		accel:       dictionary.NewAccelerator(dict),
		cache:       newPairCache(),
		maxSeeds:    MaxSeeds,
		maxAnneal:   DefaultMaxAnneal,
		startMaxLen: DefaultStartMaxLen,
	}
	if cfg != nil {
		if cfg.MaxSeeds > 0 {
			s.maxSeeds = cfg.MaxSeeds
		}
		if cfg.MaxAnneal > 0 {
			s.maxAnneal = cfg.MaxAnneal
		}
		if cfg.StartMaxLen > 0 {
			s.startMaxLen = cfg.StartMaxLen
		}
	}
	return s
}

// randomize1 attempts one shrink move on slot i: if the current word has
// more than 4 letters, replace it with the largest subset strictly
// smaller than it, chosen uniformly among same-size candidates.
func (s *Search) randomize1(sol *Solution, r *rng, i int) {
	old := sol.Words[i]
	if old.Count() <= 4 {
		return
	}
	l := sol.Attribution[i]
	available := sol.Remainder.Add(old)

	results := s.table.Unary(l).SearchLargestSubset(available, old.Count()-1)
	if len(results) == 0 {
		return
	}
	pick := results[r.intn(len(results))]
	sol.Remainder = available.Sub(pick.Key)
	sol.Words[i] = pick.Key
}

// randomize performs 1 or 2 independent shrink moves on random slots.
func (s *Search) randomize(sol *Solution, r *rng) {
	n := 1 + r.intn(2)
	for k := 0; k < n; k++ {
		i := r.intn(len(sol.Words))
		s.randomize1(sol, r, i)
	}
}

// optimize1 attempts one grow move on slot i: find the smallest subset
// strictly larger than the current word, ranked by scrabble-score-per-
// letter with a geometric draw among same-size ties.
func (s *Search) optimize1(sol *Solution, r *rng, i int) bool {
	old := sol.Words[i]
	l := sol.Attribution[i]
	available := sol.Remainder.Add(old)

	results := s.table.Unary(l).SearchSmallestSubset(available, old.Count()+1)
	if len(results) == 0 {
		return false
	}

	pick := pickByScore(results, r)
	sol.Remainder = available.Sub(pick.Key)
	sol.Words[i] = pick.Key
	return true
}

// pickByScore sorts same-size results by descending scrabble-score-per-
// letter and draws an index with a geometric distribution, biasing
// toward (but not forcing) the highest-scoring candidate.
func pickByScore(results []trie.Result[letter.Set], r *rng) trie.Result[letter.Set] {
	sorted := append([]trie.Result[letter.Set](nil), results...)
	insertionSortByScore(sorted)
	idx := r.geometric(0.5, len(sorted)-1)
	return sorted[idx]
}

func insertionSortByScore(rs []trie.Result[letter.Set]) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && scorePerLetter(rs[j].Key) > scorePerLetter(rs[j-1].Key); j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

// optimize2 attempts a grow-pair move over slots i and j simultaneously,
// querying the (l1, l2) binary trie for the smallest combined pair
// exceeding the old combined size. Accepted only if at least one of the
// two resulting words is <= maxLen.
func (s *Search) optimize2(sol *Solution, r *rng, i, j, maxLen int) bool {
	oldI, oldJ := sol.Words[i], sol.Words[j]
	li, lj := sol.Attribution[i], sol.Attribution[j]
	available := sol.Remainder.Add(oldI).Add(oldJ)

	l1, l2, flipped := li, lj, false
	if l1 > l2 {
		l1, l2, flipped = l2, l1, true
	}

	tr, ok := s.table.Binary(l1, l2)
	if !ok {
		return false
	}

	minLen := oldI.Count() + oldJ.Count() + 1
	results := s.cache.getOrCompute(l1, l2, available, minLen, func() []trie.Result[[2]letter.Set] {
		return tr.SearchSmallestSubset(available, minLen)
	})
	if len(results) == 0 {
		return false
	}

	pick := results[r.intn(len(results))]
	a, b := pick.Value[0], pick.Value[1]
	if flipped {
		a, b = b, a
	}
	if a.Count() > maxLen && b.Count() > maxLen {
		return false
	}

	sol.Remainder = available.Sub(a).Sub(b)
	sol.Words[i] = a
	sol.Words[j] = b
	return true
}

// optimize runs the grow-one/grow-pair passes for increasing max_len
// thresholds until no further progress is possible.
func (s *Search) optimize(sol *Solution, r *rng) {
	for maxLen := s.startMaxLen; ; maxLen++ {
		for {
			progressed, missed := s.growOnePass(sol, r, maxLen)
			if progressed {
				continue
			}
			if !missed {
				return
			}
			break
		}

		for s.growPairPass(sol, r, maxLen) {
		}
	}
}

func (s *Search) growOnePass(sol *Solution, r *rng, maxLen int) (progressed, missed bool) {
	order := r.permutation(len(sol.Words))
	for _, i := range order {
		if sol.Words[i].Count() >= maxLen {
			missed = true
			continue
		}
		if s.optimize1(sol, r, i) {
			progressed = true
		}
	}
	return progressed, missed
}

func (s *Search) growPairPass(sol *Solution, r *rng, maxLen int) bool {
	progressed := false
	for i := 0; i < len(sol.Words); i++ {
		for j := i + 1; j < len(sol.Words); j++ {
			if s.optimize2(sol, r, i, j, maxLen) {
				progressed = true
			}
		}
	}
	return progressed
}

// anneal runs optimize, checks for completion, and otherwise randomizes
// and retries, up to s.maxAnneal times.
func (s *Search) anneal(sol *Solution, r *rng) bool {
	for attempt := 0; attempt < s.maxAnneal; attempt++ {
		s.optimize(sol, r)
		if sol.isDone() {
			return true
		}
		s.randomize(sol, r)
	}
	return false
}
