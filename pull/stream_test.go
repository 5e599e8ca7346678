package pull

import (
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	got := Collect(FromSlice([]int{1, 2, 3}))
	want := []int{1, 2, 3}
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	got := Collect(FromSlice([]int{}))
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestOf(t *testing.T) {
	got := Collect(Of("a", "b"))
	if !sliceEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestRunes(t *testing.T) {
	got := Collect(Runes("[2]"))
	if string(got) != "[2]" {
		t.Errorf("got %q, want %q", string(got), "[2]")
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"ascending", 1, 5, []int{1, 2, 3, 4, 5}},
		{"single", 3, 3, []int{3}},
		{"empty when to < from", 5, 1, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collect(Range(tc.from, tc.to))
			if !sliceEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSources_IdempotentExhaustion(t *testing.T) {
	sources := map[string]Stream[int]{
		"slice": FromSlice([]int{1}),
		"empty": Empty[int](),
		"range": Range(1, 1),
	}
	for name, s := range sources {
		t.Run(name, func(t *testing.T) {
			ForEach(s, func(int) {})
			for i := 0; i < 3; i++ {
				if v, ok := s.Next(); ok {
					t.Fatalf("call %d after exhaustion returned %v", i, v)
				}
			}
		})
	}
}

func TestStreamFunc(t *testing.T) {
	n := 0
	s := StreamFunc[int](func() (int, bool) {
		if n >= 2 {
			return 0, false
		}
		n++
		return n, true
	})
	got := Collect[int](s)
	if !sliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestForEach_VisitsInOrder(t *testing.T) {
	var seen []int
	ForEach(Of(3, 1, 2), func(n int) { seen = append(seen, n) })
	if !sliceEqual(seen, []int{3, 1, 2}) {
		t.Errorf("got %v, want [3 1 2]", seen)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce(Range(1, 4), 0, func(acc, n int) int { return acc + n })
	if sum != 10 {
		t.Errorf("got %d, want 10", sum)
	}

	empty := Reduce(Empty[int](), 7, func(acc, n int) int { return acc + n })
	if empty != 7 {
		t.Errorf("got %d, want the initial value 7", empty)
	}
}

func TestAll_Break(t *testing.T) {
	s := Range(1, 5)
	var got []int
	for v := range All(s) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	if !sliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}

	rest := Collect(s)
	if !sliceEqual(rest, []int{3, 4, 5}) {
		t.Errorf("expected the remaining values to stay in the stream, got %v", rest)
	}
}

// --- helpers ---

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countingStream wraps a stream and counts calls to Next.
type countingStream[T any] struct {
	inner Stream[T]
	calls int
}

func (c *countingStream[T]) Next() (T, bool) {
	c.calls++
	return c.inner.Next()
}
