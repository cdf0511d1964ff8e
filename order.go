package kdtree

// Comparator is a caller-supplied strict weak order over a single
// coordinate axis, used in place of the natural `<` (spec §4.2,
// kd_compare). "Equality" at an axis is derived as
// !comp(a,b) && !comp(b,a), never assumed from ==.
type Comparator[T Ordered] func(a, b T) bool

// natural returns the default Comparator: ordinary `<`.
func natural[T Ordered]() Comparator[T] {
	return func(a, b T) bool { return a < b }
}

// kdLess is the level-aware total order (spec §4.2): compares axes in the
// cyclic order start, next(start), … for d axes total, returning at the
// first axis on which one side is strictly less. At start == 0 this is
// ordinary lexicographic order (lexLess below is exactly this case).
//
// This single function realizes both kd_less and kd_compare from the
// source: kd_less is kdLess with comp == natural[T](), kd_compare is
// kdLess with a caller-supplied comp.
func kdLess[T Ordered](a, b Point[T], start int, comp Comparator[T]) bool {
	d := a.Dim()
	axis := start
	for n := 0; n < d; n++ {
		av, bv := a.Axis(axis), b.Axis(axis)
		if comp(av, bv) {
			return true
		}
		if comp(bv, av) {
			return false
		}
		axis = nextAxis(axis, d)
	}
	return false
}

// lexLess is plain lexicographic order over all axes starting at axis 0 —
// the comparator lex_sort uses, and what kdLess degenerates to at level 0.
func lexLess[T Ordered](a, b Point[T], comp Comparator[T]) bool {
	return kdLess(a, b, 0, comp)
}

// allLess reports whether a is strictly less than b on every axis — the
// "strictly dominated" corner test (spec §4.2).
func allLess[T Ordered](a, b Point[T], comp Comparator[T]) bool {
	for j := 0; j < a.Dim(); j++ {
		if !comp(a.Axis(j), b.Axis(j)) {
			return false
		}
	}
	return true
}

// noneLess reports whether a is not-less than b on every axis — the
// "weakly dominates" corner test, the complement of "exists j with
// a_j < b_j" (spec §4.2).
func noneLess[T Ordered](a, b Point[T], comp Comparator[T]) bool {
	for j := 0; j < a.Dim(); j++ {
		if comp(a.Axis(j), b.Axis(j)) {
			return false
		}
	}
	return true
}

// within reports whether x lies in the half-open hyper-box [lo, hi)
// (spec §4.2).
func within[T Ordered](x, lo, hi Point[T], comp Comparator[T]) bool {
	return noneLess(x, lo, comp) && allLess(x, hi, comp)
}
