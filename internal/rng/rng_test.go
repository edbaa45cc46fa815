package rng

import (
	"sort"
	"testing"
)

func TestSeededRngDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		x, y := a.Float32(0, 1), b.Float32(0, 1)
		if x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}

	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", a.Seed())
	}
}

func TestSeededRngDifferentSeeds(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 20; i++ {
		if a.Int(0, 1000) == b.Int(0, 1000) {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestSeededRngRanges(t *testing.T) {
	r := New(7)

	for i := 0; i < 1000; i++ {
		f := r.Float32(-5, 5)
		if f < -5 || f > 5 {
			t.Fatalf("Float32(-5, 5) = %v out of range", f)
		}
		n := r.Int(10, 20)
		if n < 10 || n > 20 {
			t.Fatalf("Int(10, 20) = %d out of range", n)
		}
		if idx := r.Index(30, 20); idx < 0 {
			t.Fatalf("Index() = %d should never be negative", idx)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(9)
	b := a.Clone()

	if a.Int(0, 1<<20) != b.Int(0, 1<<20) {
		t.Error("clone should continue the same sequence")
	}
	a.Int(0, 10)
	if a.state == b.state {
		t.Error("advancing the original should not move the clone")
	}
}

func TestChoose(t *testing.T) {
	r := New(3)

	if _, ok := Choose(r, []int{}); ok {
		t.Error("Choose() on empty slice should fail")
	}

	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v, ok := Choose(r, items)
		if !ok {
			continue
		}
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("Choose() = %q not in slice", v)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := New(11)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 300}
	Shuffle(r, items)

	sorted := append([]int(nil), items...)
	sort.Ints(sorted)
	for i := 0; i < 17; i++ {
		if sorted[i] != i {
			t.Fatalf("Shuffle() lost elements: %v", items)
		}
	}
	if sorted[17] != 300 {
		t.Fatalf("Shuffle() lost elements: %v", items)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(New(5), a)
	Shuffle(New(5), b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed shuffled differently: %v vs %v", a, b)
		}
	}
}
