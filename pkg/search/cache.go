package search

import (
	"encoding/binary"
	"sync"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/singleflight"

	"acrostic/pkg/letter"
	"acrostic/pkg/trie"
)

// pairCache memoizes the binary trie's smallest-subset-pair query, keyed
// by (l1, l2, S, minLen). A solve shares exactly one pairCache across all
// of its seed goroutines: singleflight.Group guarantees at most one
// goroutine ever runs compute() for a given key, and sync.Map publishes
// the result for every other concurrent or later caller.
type pairCache struct {
	group singleflight.Group
	store sync.Map // uint64 key -> []trie.Result[[2]letter.Set]
}

func newPairCache() *pairCache {
	return &pairCache{}
}

func pairCacheKey(l1, l2 letter.Letter, s letter.Set, minLen int) uint64 {
	var buf [2 + letter.Count + 8]byte
	buf[0] = byte(l1)
	buf[1] = byte(l2)
	copy(buf[2:2+letter.Count], s[:])
	binary.LittleEndian.PutUint64(buf[2+letter.Count:], uint64(minLen))
	return xxh3.Hash(buf[:])
}

// getOrCompute returns the cached result for the key, computing it via
// compute exactly once if absent.
func (c *pairCache) getOrCompute(l1, l2 letter.Letter, s letter.Set, minLen int, compute func() []trie.Result[[2]letter.Set]) []trie.Result[[2]letter.Set] {
	key := pairCacheKey(l1, l2, s, minLen)

	if v, ok := c.store.Load(key); ok {
		return v.([]trie.Result[[2]letter.Set])
	}

	shardKey := string(binary.LittleEndian.AppendUint64(nil, key))
	v, _, _ := c.group.Do(shardKey, func() (any, error) {
		if v, ok := c.store.Load(key); ok {
			return v, nil
		}
		result := compute()
		c.store.Store(key, result)
		return result, nil
	})
	return v.([]trie.Result[[2]letter.Set])
}
