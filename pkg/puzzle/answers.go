package puzzle

import (
	"context"
	"fmt"

	"acrostic/pkg/letter"
	"acrostic/pkg/search"
)

// RunAnswers reads stage1, solves for the attribution in source_letters
// against the multiset in quote_letters, and writes stage2 with one Clue
// per attribution letter (answer, answer letters, and drawn-position
// indices already assigned).
//
// The solver's seed is derived as puzzle_index*1000 + localSeed (spec §9),
// the same scheme positions.go uses for its position-pool shuffling, so a
// given puzzle always explores the same 1000-seed block regardless of
// what other puzzles in the batch are doing.
func RunAnswers(dir string, id int, s *search.Search, localSeed uint64, concurrency int) error {
	p, err := Read(dir, id, "stage1.json")
	if err != nil {
		return fmt.Errorf("puzzle %d: read stage1: %w", id, err)
	}
	if p.QuoteLetters == nil || p.SourceLetters == nil {
		return fmt.Errorf("puzzle %d: stage1 missing quote_letters/source_letters, run 'quote' first", id)
	}

	quote := letter.FromString(*p.QuoteLetters)
	var attribution []letter.Letter
	for i := 0; i < len(*p.SourceLetters); i++ {
		b := (*p.SourceLetters)[i]
		if b == ' ' {
			continue
		}
		attribution = append(attribution, letter.New(b))
	}

	baseSeed := uint64(id)*1000 + localSeed
	sol, err := s.Solve(context.Background(), quote, attribution, baseSeed, concurrency)
	if err != nil {
		return fmt.Errorf("puzzle %d: solve: %w", id, err)
	}
	words, ok := s.Materialize(sol)
	if !ok {
		return fmt.Errorf("puzzle %d: materialize: solved multisets not found in dictionary", id)
	}

	clues := make([]Clue, len(words))
	for i, w := range words {
		spelling := make([]byte, len(w.Letters))
		for j, l := range w.Letters {
			spelling[j] = l.Byte()
		}
		clues[i] = Clue{
			Answer:        w.Spelling,
			AnswerLetters: string(spelling),
		}
	}

	if err := AssignIndices(clues, *p.QuoteLetters, id); err != nil {
		return fmt.Errorf("puzzle %d: assign indices: %w", id, err)
	}
	p.Clues = clues

	if err := p.Write(dir, id, "stage2.json"); err != nil {
		return fmt.Errorf("puzzle %d: write stage2: %w", id, err)
	}
	return nil
}
