package letter

// Map is a dense array indexed by Letter, generalizing the per-letter
// tables used throughout the solver (position pools, partition counts,
// letter-set storage itself).
type Map[V any] [Count]V

// NewMap returns a zero-valued Map.
func NewMap[V any]() Map[V] {
	return Map[V]{}
}

// Get returns the value stored for l.
func (m Map[V]) Get(l Letter) V { return m[l] }

// Set stores v for l.
func (m *Map[V]) Set(l Letter, v V) { m[l] = v }

// Each calls fn for every letter in order, passing the letter and its value.
func (m Map[V]) Each(fn func(Letter, V)) {
	for i, v := range m {
		fn(Letter(i), v)
	}
}

// Transform builds a new Map by applying fn element-wise to two maps,
// mirroring the zip-then-map pattern used for LetterSet arithmetic.
func Transform[A, B, C any](a Map[A], b Map[B], fn func(A, B) C) Map[C] {
	var out Map[C]
	for i := range out {
		out[i] = fn(a[i], b[i])
	}
	return out
}
