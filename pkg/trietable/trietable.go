// Package trietable loads the on-disk index of unary and binary tries —
// one FlatTrie[letter.Set] per first letter, one FlatTrie[[2]letter.Set]
// per ordered first-letter pair — and keeps it resident for the lifetime
// of the process.
package trietable

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	"acrostic/pkg/letter"
	"acrostic/pkg/trie"
)

// Table is a loaded, read-only trie index shared across every solver
// goroutine. Once New returns, a Table is never mutated.
type Table struct {
	unary  letter.Map[trie.Trie[letter.Set]]
	binary map[[2]letter.Letter]trie.Trie[[2]letter.Set]

	regions []mmap.MMap // kept mapped until Close
}

// New loads the 26 unary tries and up to 351 binary tries (one per ordered
// first-letter pair with l1 <= l2) from dir, which must contain an
// "unary/" and "binary/" subdirectory as written by the index builder.
func New(dir string) (*Table, error) {
	t := &Table{
		binary: make(map[[2]letter.Letter]trie.Trie[[2]letter.Set]),
	}

	for _, l := range letter.All() {
		path := filepath.Join(dir, "unary", fmt.Sprintf("map_%s.dat", l))
		data, err := t.mmapFile(path)
		if err != nil {
			return nil, fmt.Errorf("trietable: loading unary %s: %w", l, err)
		}
		tr, err := trie.DecodeUnary(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("trietable: decoding unary %s: %w", l, err)
		}
		t.unary.Set(l, tr)
	}

	for _, l1 := range letter.All() {
		for _, l2 := range letter.All() {
			if l2 < l1 {
				continue
			}
			path := filepath.Join(dir, "binary", fmt.Sprintf("map_%s_%s.dat", l1, l2))
			data, err := t.mmapFile(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("trietable: loading binary %s%s: %w", l1, l2, err)
			}
			tr, err := trie.DecodeBinary(bytes.NewReader(data))
			if err != nil {
				return nil, fmt.Errorf("trietable: decoding binary %s%s: %w", l1, l2, err)
			}
			t.binary[[2]letter.Letter{l1, l2}] = tr
		}
	}

	return t, nil
}

// mmapFile maps path read-only and returns its bytes. The mapping is kept
// in t.regions so the backing pages stay valid for the table's lifetime;
// callers get a decoded, in-memory Trie back, not a view over the mapping
// itself — see DESIGN.md for why FlatTrie isn't read directly off mmap
// bytes in the Go port. An empty file (an empty trie) is not mapped and
// yields no bytes.
func (t *Table) mmapFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, nil
	}

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	t.regions = append(t.regions, region)
	return region, nil
}

// Close unmaps every loaded region. A Table is process-lifetime by design;
// Close exists for tests and short-lived tools that build a Table and
// discard it.
func (t *Table) Close() error {
	var firstErr error
	for _, r := range t.regions {
		if err := r.Unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Unary returns the unary trie for first-letter l.
func (t *Table) Unary(l letter.Letter) trie.Trie[letter.Set] {
	return t.unary.Get(l)
}

// Binary returns the binary trie for the ordered first-letter pair
// (l1, l2) with l1 <= l2, and whether it exists.
func (t *Table) Binary(l1, l2 letter.Letter) (trie.Trie[[2]letter.Set], bool) {
	tr, ok := t.binary[[2]letter.Letter{l1, l2}]
	return tr, ok
}
