package letter

import "testing"

func TestFromString(t *testing.T) {
	s := FromString("Hello, World! 123")
	if got := s.Count(); got != 10 {
		t.Fatalf("Count() = %d, want 10", got)
	}
	if got := s.Get(New('l')); got != 3 {
		t.Fatalf("count of L = %d, want 3", got)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a := FromString("hello")
	b := FromString("world")
	sum := a.Add(b)
	if !a.IsSubset(sum) || !b.IsSubset(sum) {
		t.Fatalf("a and b must both be subsets of a+b")
	}
	if back := sum.Sub(b); !back.Equal(a) {
		t.Fatalf("(a+b)-b = %v, want %v", back, a)
	}
}

func TestIsSubset(t *testing.T) {
	cat := FromString("cat")
	cats := FromString("cats")
	if !cat.IsSubset(cats) {
		t.Fatalf("cat should be a subset of cats")
	}
	if cats.IsSubset(cat) {
		t.Fatalf("cats should not be a subset of cat")
	}
}

func TestEmpty(t *testing.T) {
	var s Set
	if !s.Empty() {
		t.Fatalf("zero-value Set should be empty")
	}
	if !FromString("").Empty() {
		t.Fatalf("empty string should produce empty set")
	}
}

func TestStringRoundTripAlphabetical(t *testing.T) {
	s := FromString("dab")
	if got, want := s.String(), "ABD"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSetIsValueType(t *testing.T) {
	a := FromString("cat")
	b := a
	b = b.Add(FromString("s"))
	if a.Count() != 3 {
		t.Fatalf("mutating a copy must not affect the original: a.Count() = %d", a.Count())
	}
}
