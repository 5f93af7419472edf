package dictionary

import (
	"github.com/tchap/go-patricia/v2/patricia"

	"acrostic/pkg/letter"
)

// Accelerator indexes dictionary words by their canonical letter-multiset
// string (letters in alphabetical order, e.g. "cat" and "act" both key to
// "act"), so the solver's word-materialization step can look a multiset up
// directly instead of scanning every dictionary entry. It's built once per
// loaded Dictionary and never mutated afterward.
//
// This reuses go-patricia's radix trie the same way a prefix completer
// does, just keyed by a sorted-letters string rather than a raw prefix:
// the trie still gives near-O(key length) lookup, and VisitSubtree still
// lets a caller walk every word sharing a multiset when duplicates exist.
type Accelerator struct {
	trie *patricia.Trie
}

// NewAccelerator builds an Accelerator over every word in d.
func NewAccelerator(d *Dictionary) *Accelerator {
	trie := patricia.NewTrie()
	for i, w := range d.Words {
		key := patricia.Prefix(w.Multiset.String())
		if existing := trie.Get(key); existing != nil {
			trie.Set(key, append(existing.([]int), i))
		} else {
			trie.Insert(key, []int{i})
		}
	}
	return &Accelerator{trie: trie}
}

// Find returns the index (into the Dictionary's Words slice) of a word
// whose multiset exactly equals want and whose first letter is first, or
// -1 if none is indexed.
func (a *Accelerator) Find(d *Dictionary, want letter.Set, first letter.Letter) int {
	item := a.trie.Get(patricia.Prefix(want.String()))
	if item == nil {
		return -1
	}
	for _, idx := range item.([]int) {
		if d.Words[idx].First() == first {
			return idx
		}
	}
	return -1
}
