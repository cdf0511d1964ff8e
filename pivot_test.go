package kdtree

import (
	"math/rand"
	"testing"
)

func TestMiddleOf(t *testing.T) {
	cases := map[int]int{0: 0, 1: 0, 2: 1, 5: 2, 6: 3}
	for n, want := range cases {
		if got := middleOf(n); got != want {
			t.Errorf("middleOf(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestSelectNth_PlacesCorrectRank(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	less := func(a, b int) bool { return a < b }

	for trial := 0; trial < 50; trial++ {
		n := r.Intn(200) + 1
		s := make([]int, n)
		for i := range s {
			s[i] = r.Intn(50)
		}
		k := r.Intn(n)

		sorted := append([]int(nil), s...)
		insertionSortInts(sorted)
		want := sorted[k]

		selectNth(s, k, less)
		if s[k] != want {
			t.Fatalf("selectNth rank %d = %d, want %d (n=%d)", k, s[k], want, n)
		}
		for i := 0; i < k; i++ {
			if less(s[k], s[i]) {
				t.Fatalf("element before rank %d is greater: s[%d]=%d > s[k]=%d", k, i, s[i], s[k])
			}
		}
		for i := k; i < n; i++ {
			if less(s[i], s[k]) {
				t.Fatalf("element at/after rank %d is less: s[%d]=%d < s[k]=%d", k, i, s[i], s[k])
			}
		}
	}
}

func insertionSortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func TestPartitionRepair(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	s := []int{1, 3, 3, 3, 2, 3}
	pivot := 5 // s[5] == 3
	p := partitionRepair(s, pivot, less)

	for i := 0; i < p; i++ {
		if !less(s[i], s[pivot]) {
			t.Errorf("prefix[%d]=%d is not strictly less than pivot value %d", i, s[i], s[pivot])
		}
	}
	for i := p; i < pivot; i++ {
		if less(s[i], s[pivot]) {
			t.Errorf("element at %d (%d) should not be strictly less than pivot after repair", i, s[i])
		}
	}
}

func TestFindPivotForQuery_AlwaysMatchesMiddleOf(t *testing.T) {
	// findPivotForQuery must always agree with the fixed index sortLevel
	// actually splits on — middleOf(len(s)) — regardless of the data,
	// including when every element ties on the axis sortLevel last used
	// (the case that broke the previous tie-walking implementation).
	for _, s := range [][]Coord[int]{
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		{{5, 582}, {5, 867}, {5, 821}, {5, 782}, {5, 64}, {5, 261}},
		{{7, 7}},
	} {
		if got := findPivotForQuery(s); got != middleOf(len(s)) {
			t.Errorf("findPivotForQuery(%v) = %d, want %d", s, got, middleOf(len(s)))
		}
	}
}
