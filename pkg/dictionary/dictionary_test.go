package dictionary

import (
	"bytes"
	"strings"
	"testing"

	"acrostic/pkg/letter"
)

func TestLoadSourceTextFiltersBannedKeepsShort(t *testing.T) {
	src := strings.Join([]string{
		"the\t1000000",
		"three\t900000",
		"cat\t500000",
		"cats\t400000",
		"at\t300000",
	}, "\n")

	d, err := LoadSourceText(strings.NewReader(src), 0)
	if err != nil {
		t.Fatalf("LoadSourceText: %v", err)
	}

	var spellings []string
	for _, w := range d.Words {
		spellings = append(spellings, w.Spelling)
	}
	for _, banned := range []string{"three"} {
		for _, s := range spellings {
			if s == banned {
				t.Fatalf("banned word %q was not filtered", banned)
			}
		}
	}

	found := map[string]bool{}
	for _, w := range d.Words {
		found[w.Spelling] = true
	}
	if !found["cat"] || !found["cats"] {
		t.Fatalf("expected cat and cats to survive filtering, got %v", spellings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := &Dictionary{Words: []Word{
		NewWord("cat", 100),
		NewWord("catnip", 50),
	}}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Words) != len(d.Words) {
		t.Fatalf("round trip changed word count: %d vs %d", len(got.Words), len(d.Words))
	}
	for i := range d.Words {
		if got.Words[i].Spelling != d.Words[i].Spelling {
			t.Fatalf("word %d spelling mismatch: %q vs %q", i, got.Words[i].Spelling, d.Words[i].Spelling)
		}
		if got.Words[i].Frequency != d.Words[i].Frequency {
			t.Fatalf("word %d frequency mismatch", i)
		}
	}
}

func TestAcceleratorFindsByMultisetAndFirstLetter(t *testing.T) {
	d := &Dictionary{Words: []Word{
		NewWord("cat", 100),
		NewWord("act", 50),
		NewWord("tac", 10),
	}}
	acc := NewAccelerator(d)

	idx := acc.Find(d, letter.FromString("cat"), letter.New('c'))
	if idx < 0 || d.Words[idx].Spelling != "cat" {
		t.Fatalf("expected to find 'cat', got index %d", idx)
	}

	idx = acc.Find(d, letter.FromString("cat"), letter.New('a'))
	if idx < 0 || d.Words[idx].Spelling != "act" {
		t.Fatalf("expected to find 'act', got index %d", idx)
	}

	if idx := acc.Find(d, letter.FromString("zzz"), letter.New('z')); idx != -1 {
		t.Fatalf("expected no match for an absent multiset, got %d", idx)
	}
}
