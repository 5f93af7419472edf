package index

import (
	"os"
	"path/filepath"
	"testing"

	"acrostic/pkg/dictionary"
	"acrostic/pkg/letter"
	"acrostic/pkg/trie"
)

func TestBuildWritesUnaryAndBinaryFiles(t *testing.T) {
	words := []dictionary.Word{
		dictionary.NewWord("catnip", 900),
		dictionary.NewWord("napkin", 800),
		dictionary.NewWord("sailor", 700),
		dictionary.NewWord("listens", 600),
	}
	d := &dictionary.Dictionary{Words: words}

	dir := t.TempDir()
	if err := Build(dir, d, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "unary", "map_C.dat"))
	if err != nil {
		t.Fatalf("opening unary C: %v", err)
	}
	defer f.Close()
	tr, err := trie.DecodeUnary(f)
	if err != nil {
		t.Fatalf("decoding unary C: %v", err)
	}
	if _, ok := tr.Lookup(letter.FromString("catnip")); !ok {
		t.Fatalf("expected catnip in unary C trie")
	}

	bf, err := os.Open(filepath.Join(dir, "binary", "map_C_N.dat"))
	if err != nil {
		t.Fatalf("expected a binary C-N trie to be written: %v", err)
	}
	defer bf.Close()
	if _, err := trie.DecodeBinary(bf); err != nil {
		t.Fatalf("decoding binary C-N: %v", err)
	}
}

func TestCandidatesFiltersSizeAndCapsCount(t *testing.T) {
	words := []dictionary.Word{
		dictionary.NewWord("at", 1000),
		dictionary.NewWord("catnip", 10),
	}
	d := &dictionary.Dictionary{Words: words}
	cands := candidates(d, MinMultisetSize, MaxCandidates)
	if len(cands) != 1 || cands[0].Spelling != "catnip" {
		t.Fatalf("expected only catnip (multiset size > 5) to survive, got %v", cands)
	}
}
