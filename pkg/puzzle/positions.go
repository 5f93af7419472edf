package puzzle

import "acrostic/pkg/letter"

// positionRNG is a minimal xorshift64* generator, mirroring the one the
// solver uses, kept local here so position-pool shuffling has no
// dependency on the solver package for what is otherwise an unrelated
// concern.
type positionRNG struct{ state uint64 }

func newPositionRNG(seed uint64) *positionRNG {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &positionRNG{state: seed}
}

func (r *positionRNG) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

func (r *positionRNG) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// positionPool holds, per letter, every zero-based index within
// quote_letters where that letter occurs, pre-shuffled so assignment can
// pop from the end without replacement.
type positionPool struct {
	byLetter letter.Map[[]int]
}

// newPositionPool scans quoteLetters and builds a shuffled position pool,
// seeded deterministically by puzzleIndex so that re-running clue
// assignment for the same puzzle produces identical indices.
func newPositionPool(quoteLetters string, puzzleIndex int) *positionPool {
	pool := &positionPool{}
	r := newPositionRNG(uint64(puzzleIndex)*1000 + 1)

	for _, l := range letter.All() {
		var positions []int
		for i := 0; i < len(quoteLetters); i++ {
			b := quoteLetters[i]
			if b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			}
			if b == l.Byte() {
				positions = append(positions, i)
			}
		}
		shuffle(positions, r)
		pool.byLetter.Set(l, positions)
	}
	return pool
}

func shuffle(s []int, r *positionRNG) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// pop removes and returns the next unused position for l, in the order
// the pool was shuffled. The second return is false if the pool for l is
// exhausted — a caller bug, since every quote letter consumed by a clue
// must have a corresponding position in quote_letters.
func (p *positionPool) pop(l letter.Letter) (int, bool) {
	positions := p.byLetter.Get(l)
	if len(positions) == 0 {
		return 0, false
	}
	last := len(positions) - 1
	pos := positions[last]
	p.byLetter.Set(l, positions[:last])
	return pos, true
}

// AssignIndices fills in Indices for each clue's answer letters, drawing
// positions without replacement from a pool built over quoteLetters and
// seeded by puzzleIndex.
func AssignIndices(clues []Clue, quoteLetters string, puzzleIndex int) error {
	pool := newPositionPool(quoteLetters, puzzleIndex)
	for i := range clues {
		answer := clues[i].AnswerLetters
		indices := make([]int, len(answer))
		for j := 0; j < len(answer); j++ {
			l := letter.New(answer[j])
			pos, ok := pool.pop(l)
			if !ok {
				return errPoolExhausted(l)
			}
			indices[j] = pos
		}
		clues[i].Indices = indices
	}
	return nil
}

type errPoolExhausted letter.Letter

func (e errPoolExhausted) Error() string {
	return "puzzle: position pool exhausted for letter " + letter.Letter(e).String()
}
