package wordgrid

import (
	"slices"
	"sort"
)

// WordSet is a static set of words backed by a minimal perfect hash. It is
// the set-membership counterpart of Trie and Index and is immutable once
// built.
type WordSet struct {
	words []string // words[slot] is the word hashed to slot
	g     []int32  // displacement per primary bucket
}

// NewWordSet builds a set from words. Duplicates are ignored.
func NewWordSet(words []string) *WordSet {
	unique := slices.Clone(words)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	s := &WordSet{}
	if len(unique) == 0 {
		return s
	}

	g, permute := minimalPerfectHash(len(unique), func(d int32, i int) int {
		return stringHash(d, unique[i])
	})

	s.g = g
	s.words = make([]string, len(unique))
	for slot, src := range permute {
		s.words[slot] = unique[src]
	}
	return s
}

// Contains reports whether word is in the set.
func (s *WordSet) Contains(word string) bool {
	if len(s.words) == 0 {
		return false
	}
	return s.words[s.slot(word)] == word
}

// Len returns the number of distinct words.
func (s *WordSet) Len() int {
	return len(s.words)
}

func (s *WordSet) slot(word string) int {
	d := s.g[stringHash(0, word)%len(s.g)]
	if d < 0 {
		return int(-d - 1)
	}
	return stringHash(d, word) % len(s.words)
}

// stringHash implements the FNV32A hash for strings, taking d as a parameter
// to provide a variation of the hash.
func stringHash(d int32, str string) int {
	result := int(d)
	if d == 0 {
		result = 0x01000193
	}

	// Use the FNV algorithm from http://isthe.com/chongo/tech/comp/fnv/
	for _, c := range []byte(str) {
		result = ((result * 0x01000193) ^ int(c)) & 0xffffffff
	}

	return result
}

// minimalPerfectHash places size distinct items into size slots so that a
// lookup needs two hashes at most. hash(d, i) hashes item i with seed d; seed
// 0 is the primary hash that picks an item's bucket.
//
// The first result holds one entry per bucket, read by WordSet.slot:
//
//	d > 0   the bucket's items sit at hash(d, item) % size
//	d < 0   the bucket has one item, stored directly at slot -d-1
//	d == 0  the bucket is empty
//
// The -1 offset keeps slot 0 apart from an empty bucket. The second result
// maps each slot to the item placed in it.
func minimalPerfectHash(size int, hash func(d int32, i int) int) ([]int32, []int) {
	type bucket struct {
		primary int
		items   []int
	}

	buckets := make([]bucket, size)
	for b := range buckets {
		buckets[b].primary = b
	}
	for item := 0; item < size; item++ {
		b := hash(0, item) % size
		buckets[b].items = append(buckets[b].items, item)
	}

	// Crowded buckets are the hardest to fit, so they go first.
	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i].items) > len(buckets[j].items)
	})

	seeds := make([]int32, size)
	placed := make([]int, size)
	for i := range placed {
		placed[i] = -1
	}

	next := 0
	for ; next < len(buckets) && len(buckets[next].items) > 1; next++ {
		b := buckets[next]
		slots := make([]int, 0, len(b.items))

		// Try seeds until every item of the bucket lands on its own free slot.
		d := int32(1)
		for len(slots) < len(b.items) {
			slot := hash(d, b.items[len(slots)]) % size
			if placed[slot] != -1 || slices.Contains(slots, slot) {
				d++
				slots = slots[:0]
				continue
			}
			slots = append(slots, slot)
		}

		seeds[b.primary] = d
		for i, slot := range slots {
			placed[slot] = b.items[i]
		}
	}

	var free []int
	for slot, item := range placed {
		if item == -1 {
			free = append(free, slot)
		}
	}

	for ; next < len(buckets) && len(buckets[next].items) == 1; next++ {
		b := buckets[next]
		slot := free[len(free)-1]
		free = free[:len(free)-1]
		seeds[b.primary] = int32(-slot - 1)
		placed[slot] = b.items[0]
	}

	return seeds, placed
}
