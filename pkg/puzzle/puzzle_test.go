package puzzle

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	letters := "ACATSAT"
	p := &Puzzle{
		Quote:        "A cat sat",
		QuoteLetters: &letters,
		Source:       "Anon",
	}
	if err := p.Write(dir, 1, "stage1.json"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(dir, 1, "stage1.json")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Quote != p.Quote || *got.QuoteLetters != *p.QuoteLetters {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, p)
	}
}

func TestAssignIndicesDeterministicAcrossRuns(t *testing.T) {
	quoteLetters := "AACSTT"
	clues := []Clue{
		{Answer: "cat", AnswerLetters: "CAT"},
		{Answer: "at", AnswerLetters: "AT"},
	}
	clues2 := []Clue{
		{Answer: "cat", AnswerLetters: "CAT"},
		{Answer: "at", AnswerLetters: "AT"},
	}

	if err := AssignIndices(clues, quoteLetters, 7); err != nil {
		t.Fatalf("AssignIndices: %v", err)
	}
	if err := AssignIndices(clues2, quoteLetters, 7); err != nil {
		t.Fatalf("AssignIndices (rerun): %v", err)
	}

	for i := range clues {
		for j := range clues[i].Indices {
			if clues[i].Indices[j] != clues2[i].Indices[j] {
				t.Fatalf("re-running AssignIndices with the same puzzle index produced different indices")
			}
		}
	}
}

func TestAssignIndicesPicksDistinctPositionsPerLetterOccurrence(t *testing.T) {
	quoteLetters := "AACSTT"
	clues := []Clue{
		{Answer: "cat", AnswerLetters: "CAT"},
		{Answer: "at", AnswerLetters: "AT"},
	}
	if err := AssignIndices(clues, quoteLetters, 3); err != nil {
		t.Fatalf("AssignIndices: %v", err)
	}

	seen := map[int]bool{}
	for _, c := range clues {
		for _, idx := range c.Indices {
			if seen[idx] {
				t.Fatalf("position %d assigned twice across clues", idx)
			}
			seen[idx] = true
			if quoteLetters[idx] == 0 {
				t.Fatalf("index %d out of range", idx)
			}
		}
	}
}
