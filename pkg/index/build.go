// Package index builds the on-disk unary and binary trie files from a
// loaded dictionary: filter to the top words by frequency, bucket
// candidate entries by first letter (or ordered first-letter pair), and
// run the FlatTrie builder once per bucket.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"acrostic/pkg/config"
	"acrostic/pkg/dictionary"
	"acrostic/pkg/letter"
	"acrostic/pkg/trie"
)

// MinMultisetSize is the default cutoff: excludes dictionary entries too
// small to ever usefully anchor a multi-word attribution. Overridden by
// config.BuildConfig.MinMultisetSize when Build is given a non-nil cfg.
const MinMultisetSize = 5

// MaxCandidates is the default cap on how many top-frequency entries feed
// the index build. Overridden by config.BuildConfig.MaxCandidates.
const MaxCandidates = 15000

// candidates filters d to multiset size > minSize and returns the
// maxCandidates most frequent, most-frequent first.
func candidates(d *dictionary.Dictionary, minSize, maxCandidates int) []dictionary.Word {
	filtered := make([]dictionary.Word, 0, len(d.Words))
	for _, w := range d.Words {
		if w.Multiset.Count() > minSize {
			filtered = append(filtered, w)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Frequency > filtered[j].Frequency
	})
	if len(filtered) > maxCandidates {
		filtered = filtered[:maxCandidates]
	}
	return filtered
}

// Build runs the full offline index pipeline: loads candidates from d,
// builds the 26 unary tries and up to 351 binary tries, and writes them
// under dir/unary and dir/binary. Binary builds run in parallel, bounded
// by cfg.Parallelism (0 means runtime.NumCPU()). cfg may be nil, in which
// case the MinMultisetSize/MaxCandidates/NumCPU defaults apply.
func Build(dir string, d *dictionary.Dictionary, cfg *config.BuildConfig) error {
	minSize, maxCandidates, parallelism := MinMultisetSize, MaxCandidates, runtime.NumCPU()
	if cfg != nil {
		if cfg.MinMultisetSize > 0 {
			minSize = cfg.MinMultisetSize
		}
		if cfg.MaxCandidates > 0 {
			maxCandidates = cfg.MaxCandidates
		}
		if cfg.Parallelism > 0 {
			parallelism = cfg.Parallelism
		}
	}
	words := candidates(d, minSize, maxCandidates)

	if err := os.MkdirAll(filepath.Join(dir, "unary"), 0755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(dir, "binary"), 0755); err != nil {
		return err
	}

	var unaryKeys, unaryVals letter.Map[[]letter.Set]
	for _, w := range words {
		l := w.First()
		keys := unaryKeys.Get(l)
		keys = append(keys, w.Multiset)
		unaryKeys.Set(l, keys)
		vals := unaryVals.Get(l)
		vals = append(vals, w.Multiset)
		unaryVals.Set(l, vals)
	}

	for _, l := range letter.All() {
		tr := trie.Build(unaryKeys.Get(l), unaryVals.Get(l))
		path := filepath.Join(dir, "unary", fmt.Sprintf("map_%s.dat", l))
		if err := writeUnary(path, tr); err != nil {
			return fmt.Errorf("index: writing unary %s: %w", l, err)
		}
	}

	type binaryBucket struct {
		keys []letter.Set
		vals [][2]letter.Set
	}
	buckets := make(map[[2]letter.Letter]*binaryBucket)
	for _, w1 := range words {
		for _, w2 := range words {
			if w1.First() > w2.First() {
				continue
			}
			key := [2]letter.Letter{w1.First(), w2.First()}
			b, ok := buckets[key]
			if !ok {
				b = &binaryBucket{}
				buckets[key] = b
			}
			b.keys = append(b.keys, w1.Multiset.Add(w2.Multiset))
			b.vals = append(b.vals, [2]letter.Set{w1.Multiset, w2.Multiset})
		}
	}

	var g errgroup.Group
	g.SetLimit(parallelism)
	for key, b := range buckets {
		key, b := key, b
		g.Go(func() error {
			tr := trie.Build(b.keys, b.vals)
			path := filepath.Join(dir, "binary", fmt.Sprintf("map_%s_%s.dat", key[0], key[1]))
			if err := writeBinary(path, tr); err != nil {
				return fmt.Errorf("index: writing binary %s%s: %w", key[0], key[1], err)
			}
			return nil
		})
	}
	return g.Wait()
}

func writeUnary(path string, tr trie.Trie[letter.Set]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return trie.EncodeUnary(f, tr)
}

func writeBinary(path string, tr trie.Trie[[2]letter.Set]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return trie.EncodeBinary(f, tr)
}
