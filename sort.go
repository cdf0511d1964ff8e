package kdtree

import "sort"

// LexSort stably orders s by plain lexicographic order over all axes
// (spec §6's lex_sort): a baseline ignoring the axis-cycling the rest of
// this package performs, useful as a cross-check and as what kdLess
// degenerates to at level 0.
func LexSort[T Ordered, E Point[T]](s []E) {
	LexSortComp(s, natural[T]())
}

// LexSortComp is LexSort with a caller-supplied per-axis comparator.
func LexSortComp[T Ordered, E Point[T]](s []E, comp Comparator[T]) {
	sort.SliceStable(s, func(i, j int) bool {
		return lexLess[T](s[i], s[j], comp)
	})
}

// Sort builds the k-d layout in place (spec §4.4, kd_sort), cycling axes
// by level using the natural `<` order on each coordinate.
func Sort[T Ordered, E Point[T]](s []E) {
	SortComp(s, natural[T]())
}

// SortComp is Sort with a caller-supplied strict weak order per axis
// (kd_compare in the source).
func SortComp[T Ordered, E Point[T]](s []E, comp Comparator[T]) {
	sortLevel(s, 0, comp)
}

func sortLevel[T Ordered, E Point[T]](s []E, level int, comp Comparator[T]) {
	if len(s) <= 1 {
		return
	}
	axis := level % s[0].Dim()
	less := func(a, b E) bool { return kdLess[T](a, b, axis, comp) }

	p := middleOf(len(s))
	selectNth(s, p, less)

	sortLevel(s[:p], level+1, comp)
	sortLevel(s[p+1:], level+1, comp)
}

// IsSorted reports whether s is in k-d layout (spec §4.6, kd_is_sorted):
// the canonical debug-time check for "was this range built by Sort (or an
// equivalent)". It never mutates s.
func IsSorted[T Ordered, E Point[T]](s []E) bool {
	return IsSortedComp(s, natural[T]())
}

// IsSortedComp is IsSorted with a caller-supplied comparator — it must be
// the same comp used to build the layout, per spec §9's "deterministic
// pivot from sorted ranges" note.
func IsSortedComp[T Ordered, E Point[T]](s []E, comp Comparator[T]) bool {
	return isSortedLevel(s, 0, comp)
}

func isSortedLevel[T Ordered, E Point[T]](s []E, level int, comp Comparator[T]) bool {
	if len(s) < 2 {
		return true
	}
	axis := level % s[0].Dim()
	pred := func(a, b E) bool { return kdLess[T](a, b, axis, comp) }

	p := findPivotForQuery(s)
	pivot := s[p]

	for i := 0; i < p; i++ {
		if pred(pivot, s[i]) {
			return false
		}
	}
	for j := p + 1; j < len(s); j++ {
		if pred(s[j], pivot) {
			return false
		}
	}

	return isSortedLevel(s[:p], level+1, comp) && isSortedLevel(s[p+1:], level+1, comp)
}
