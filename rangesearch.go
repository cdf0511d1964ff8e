package kdtree

// RangeSearch (spec §4.7): kd_lower_bound, kd_upper_bound, and the
// binary-search/equal-range operations derived from them. All require s
// to already be in k-d layout (built by Sort/SortComp with the same
// comp). Returned indices follow Go's sort.Search convention: an index in
// [0, len(s)), or len(s) if no element qualifies.

// LowerBound returns the index of the first element e in traversal order
// with noneLess(e, value) — coordinate-wise >= value on every axis — or
// len(s) if none qualifies.
func LowerBound[T Ordered, E Point[T]](s []E, value Point[T]) int {
	return LowerBoundComp(s, value, natural[T]())
}

// LowerBoundComp is LowerBound with a caller-supplied comparator, which
// must match the one s was built with.
func LowerBoundComp[T Ordered, E Point[T]](s []E, value Point[T], comp Comparator[T]) int {
	return lowerBoundLevel(s, 0, value, comp)
}

func lowerBoundLevel[T Ordered, E Point[T]](s []E, level int, value Point[T], comp Comparator[T]) int {
	if len(s) == 0 {
		return 0
	}
	if len(s) == 1 {
		if noneLess[T](s[0], value, comp) {
			return 0
		}
		return 1
	}

	p := findPivotForQuery(s)
	pivot := s[p]

	switch {
	case noneLess[T](pivot, value, comp):
		// Pivot itself qualifies; it is the fallback if nothing in the
		// left subtree qualifies first.
		if r := lowerBoundLevel(s[:p], level+1, value, comp); r < p {
			return r
		}
		return p
	case allLess[T](pivot, value, comp):
		// Pivot — and by the layout invariant on axis, the whole left
		// subtree — is entirely before value; only the right subtree
		// can qualify.
		return p + 1 + lowerBoundLevel(s[p+1:], level+1, value, comp)
	default:
		if r := lowerBoundLevel(s[:p], level+1, value, comp); r < p {
			return r
		}
		return p + 1 + lowerBoundLevel(s[p+1:], level+1, value, comp)
	}
}

// UpperBound returns the index of the first element e in traversal order
// with allLess(value, e) — strictly greater than value on every axis —
// or len(s) if none qualifies.
func UpperBound[T Ordered, E Point[T]](s []E, value Point[T]) int {
	return UpperBoundComp(s, value, natural[T]())
}

// UpperBoundComp is UpperBound with a caller-supplied comparator.
func UpperBoundComp[T Ordered, E Point[T]](s []E, value Point[T], comp Comparator[T]) int {
	return upperBoundLevel(s, 0, value, comp)
}

func upperBoundLevel[T Ordered, E Point[T]](s []E, level int, value Point[T], comp Comparator[T]) int {
	if len(s) == 0 {
		return 0
	}
	if len(s) == 1 {
		if allLess[T](value, s[0], comp) {
			return 0
		}
		return 1
	}

	p := findPivotForQuery(s)
	pivot := s[p]

	switch {
	case allLess[T](value, pivot, comp):
		if r := upperBoundLevel(s[:p], level+1, value, comp); r < p {
			return r
		}
		return p
	case noneLess[T](value, pivot, comp):
		return p + 1 + upperBoundLevel(s[p+1:], level+1, value, comp)
	default:
		if r := upperBoundLevel(s[:p], level+1, value, comp); r < p {
			return r
		}
		return p + 1 + upperBoundLevel(s[p+1:], level+1, value, comp)
	}
}

// BinarySearch reports whether any element of s coordinate-wise equals
// value on every axis (spec §4.7, kd_binary_search).
func BinarySearch[T Ordered, E Point[T]](s []E, value Point[T]) bool {
	return BinarySearchComp(s, value, natural[T]())
}

// BinarySearchComp is BinarySearch with a caller-supplied comparator.
func BinarySearchComp[T Ordered, E Point[T]](s []E, value Point[T], comp Comparator[T]) bool {
	r := LowerBoundComp(s, value, comp)
	return r != len(s) && noneLess[T](value, s[r], comp)
}

// EqualRange returns the [lo, hi) index pair bounding every element
// coordinate-wise equal to value (spec §4.7, kd_equal_range).
func EqualRange[T Ordered, E Point[T]](s []E, value Point[T]) (lo, hi int) {
	return EqualRangeComp(s, value, natural[T]())
}

// EqualRangeComp is EqualRange with a caller-supplied comparator.
func EqualRangeComp[T Ordered, E Point[T]](s []E, value Point[T], comp Comparator[T]) (lo, hi int) {
	return LowerBoundComp(s, value, comp), UpperBoundComp(s, value, comp)
}
