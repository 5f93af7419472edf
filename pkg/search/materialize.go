package search

import "acrostic/pkg/dictionary"

// Materialize turns a finished Solution's multisets back into actual
// dictionary words, one per slot, using the accelerator's indexed lookup
// rather than a linear scan.
func (s *Search) Materialize(sol Solution) ([]dictionary.Word, bool) {
	words := make([]dictionary.Word, len(sol.Words))
	for i, w := range sol.Words {
		idx := s.accel.Find(s.dict, w, sol.Attribution[i])
		if idx < 0 {
			return nil, false
		}
		words[i] = s.dict.Words[idx]
	}
	return words, true
}
