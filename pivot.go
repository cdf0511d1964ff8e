package kdtree

// Pivoting (spec §4.3): deterministic pivot selection and the machinery
// that keeps query descent in lock-step with however the sort actually
// laid the range out.

// middleOf returns the deterministic midpoint of a length-n range:
// first + floor(n/2), expressed here as a plain index since every caller
// in this package already works with a sub-slice.
func middleOf(n int) int {
	return n / 2
}

// selectNth places the element that would occur at index k in a full sort
// under less into s[k], using Hoare's quickselect: an iterative loop with
// O(1) extra space and expected O(n) time (the median-of-three pivot
// reduces the odds of bad splits; there is no introselect-style fallback,
// so the worst case is quadratic). Afterwards every element x before k
// compares !less(s[k], x) — were it false, s[k] < x would hold — so x is
// not greater than s[k], and every element from k onward compares
// !less(x, s[k]).
//
// Because less here is the full rotated comparator (kdLess at the
// current axis, see sort.go), this single selection step already
// establishes the per-axis layout invariant directly: for i < k <= j,
// !less(s[j], s[i]) forces s[i]'s axis value to be no greater than
// s[j]'s (the primary key of a rotated lexicographic order is the axis
// itself), so no separate partition_repair pass is required for
// correctness — see findPivotForQuery below and DESIGN.md for the
// reasoning this resolves the spec's Pivoting/find_pivot_for_query open
// question.
func selectNth[E any](s []E, k int, less func(a, b E) bool) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := medianOfThreePivot(s, lo, hi, less)
		p = hoarePartition(s, lo, hi, p, less)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

// medianOfThreePivot picks the median of s[lo], s[mid], s[hi] as the pivot
// index, reducing the odds of quadratic behavior on sorted/reverse-sorted
// input.
func medianOfThreePivot[E any](s []E, lo, hi int, less func(a, b E) bool) int {
	mid := lo + (hi-lo)/2
	if less(s[mid], s[lo]) {
		lo, mid = mid, lo
	}
	if less(s[hi], s[lo]) {
		return lo
	}
	if less(s[hi], s[mid]) {
		return hi
	}
	return mid
}

// hoarePartition partitions s[lo:hi+1] around s[pivotIdx] and returns the
// final index of the pivot value. Elements strictly less than the pivot
// end up to its left; every other element, including those equal to the
// pivot, ends up to its right.
func hoarePartition[E any](s []E, lo, hi, pivotIdx int, less func(a, b E) bool) int {
	pivot := s[pivotIdx]
	s[pivotIdx], s[hi] = s[hi], s[pivotIdx]
	store := lo
	for i := lo; i < hi; i++ {
		if less(s[i], pivot) {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[hi] = s[hi], s[store]
	return store
}

// partitionRepair is the source's adjust_pivot step (spec §4.3): given an
// order-statistic pivot at index pivot, it moves every element of
// s[:pivot] that compares equivalent to s[pivot] under less to the right
// end of that prefix, returning the new split point. Everything left of
// the returned index is then strictly less-than the pivot value, and
// everything from the returned index onward compares not-less.
//
// Sort (sort.go) does not need this for correctness — see selectNth's
// doc comment — but it is kept as a standalone, unexported and separately
// tested building block, matching the source's own adjust_pivot
// primitive.
func partitionRepair[E any](s []E, pivot int, less func(a, b E) bool) int {
	prefix := s[:pivot]
	store := 0
	for i := range prefix {
		if less(prefix[i], s[pivot]) {
			prefix[i], prefix[store] = prefix[store], prefix[i]
			store++
		}
	}
	return store
}

// findPivotForQuery re-derives the pivot a prior Sort call placed at this
// level without re-sorting (spec §4.3). sortLevel never adjusts its split
// away from middleOf(len(s)) — selectNth places the rank-middleOf element
// there directly, with no repair pass — so the query side must trust that
// same fixed index exactly rather than reconstruct it from the data. An
// earlier version of this function walked left through any run of
// elements tied with the midpoint on axis, on the assumption that such
// ties sit contiguously around the split; they don't, since a single
// Hoare partition only guarantees each side's axis value is <= or >= the
// pivot's, not that axis-equal elements cluster next to the midpoint. On
// axis-only-tied input (e.g. a constant first coordinate) that walk could
// drift arbitrarily far from the index Sort actually split on, sending
// IsSorted/RangeQuery/NearestNeighbor/NearestNeighbors down the wrong
// subrange. See DESIGN.md.
func findPivotForQuery[E any](s []E) int {
	return middleOf(len(s))
}
