package letter

import "strings"

// Set is a multiset of letters: a count per letter A..Z. It is a plain
// value type (not a pointer, not a slice) so it copies and compares like
// an int, matching how the solver threads sets through moves without
// aliasing bugs.
type Set Map[uint8]

// FromString folds s to uppercase ASCII letters and counts them, ignoring
// any byte that isn't a letter (spaces, punctuation, digits).
func FromString(s string) Set {
	var set Set
	for i := 0; i < len(s); i++ {
		b := s[i]
		var l Letter
		switch {
		case b >= 'a' && b <= 'z':
			l = Letter(b - 'a')
		case b >= 'A' && b <= 'Z':
			l = Letter(b - 'A')
		default:
			continue
		}
		set[l]++
	}
	return set
}

// FromCounts builds a Set directly from a per-letter count array.
func FromCounts(counts [Count]uint8) Set {
	return Set(counts)
}

// Count returns the total number of letters in the set (with multiplicity).
func (s Set) Count() int {
	var n int
	for _, c := range s {
		n += int(c)
	}
	return n
}

// Get returns the multiplicity of l in the set.
func (s Set) Get(l Letter) uint8 { return s[l] }

// IsSubset reports whether every letter's count in s is <= the same count
// in other.
func (s Set) IsSubset(other Set) bool {
	for i := range s {
		if s[i] > other[i] {
			return false
		}
	}
	return true
}

// Add returns the multiset sum of s and other.
func (s Set) Add(other Set) Set {
	var out Set
	for i := range out {
		out[i] = s[i] + other[i]
	}
	return out
}

// Sub returns the multiset difference s - other. Callers must ensure other
// is a subset of s; underflow is a programming error and is not clamped,
// so it will wrap and show up immediately as a broken invariant.
func (s Set) Sub(other Set) Set {
	var out Set
	for i := range out {
		out[i] = s[i] - other[i]
	}
	return out
}

// Equal reports whether s and other have identical counts for every letter.
func (s Set) Equal(other Set) bool { return s == other }

// Empty reports whether the set has no letters at all.
func (s Set) Empty() bool { return s.Count() == 0 }

// String renders the set as its letters in alphabetical order, each
// repeated by its multiplicity (e.g. "AABC").
func (s Set) String() string {
	var b strings.Builder
	for i, c := range s {
		for j := uint8(0); j < c; j++ {
			b.WriteByte(Letter(i).Byte())
		}
	}
	return b.String()
}
