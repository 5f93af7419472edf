// Package dictionary loads the flat word list the index builder and solver
// both read: every dictionary word's spelling, letter multiset and
// frequency score, plus a banned-word filter and a prefix-trie
// accelerator used to materialize a multiset back into an actual word.
package dictionary

import "acrostic/pkg/letter"

// MaxWordLength bounds the spelling stored in a Word record; the packed
// on-disk layout stores the spelling after a one-byte length prefix.
const MaxWordLength = 32

// Word is one dictionary record: its spelling, the letters of that
// spelling in order (not sorted — first(word) reads the first element),
// the letter multiset, and a frequency score (higher is more common).
type Word struct {
	Spelling  string
	Letters   []letter.Letter
	Multiset  letter.Set
	Frequency uint64
}

// First returns the word's first letter.
func (w Word) First() letter.Letter {
	return w.Letters[0]
}

// NewWord builds a Word from its spelling and frequency, folding case and
// ignoring non-letter runes when deriving Letters and Multiset, matching
// the same ASCII-fold convention as letter.FromString.
func NewWord(spelling string, frequency uint64) Word {
	letters := make([]letter.Letter, 0, len(spelling))
	for i := 0; i < len(spelling); i++ {
		b := spelling[i]
		switch {
		case b >= 'a' && b <= 'z':
			letters = append(letters, letter.New(b))
		case b >= 'A' && b <= 'Z':
			letters = append(letters, letter.New(b))
		}
	}
	return Word{
		Spelling:  spelling,
		Letters:   letters,
		Multiset:  letter.FromString(spelling),
		Frequency: frequency,
	}
}
