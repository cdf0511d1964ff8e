package kdtree

// BoxQuery (spec §4.8): kd_range_query, half-open hyper-rectangle
// extraction over a range in k-d layout.

// RangeQuery returns every element of s lying in the half-open hyper-box
// [lo, hi), in unspecified order, using DefaultRangeQueryOptions.
func RangeQuery[T Ordered, E Point[T]](s []E, lo, hi Point[T]) []E {
	return RangeQueryComp(s, lo, hi, natural[T](), DefaultRangeQueryOptions())
}

// RangeQueryComp is RangeQuery with a caller-supplied comparator and
// Options (notably LinearCutoff).
func RangeQueryComp[T Ordered, E Point[T]](s []E, lo, hi Point[T], comp Comparator[T], opts RangeQueryOptions) []E {
	opts = opts.applyDefaults()
	var out []E
	rangeQueryLevel(s, 0, lo, hi, comp, opts.LinearCutoff, &out)
	return out
}

func rangeQueryLevel[T Ordered, E Point[T]](s []E, level int, lo, hi Point[T], comp Comparator[T], cutoff int, out *[]E) {
	if len(s) == 0 {
		return
	}
	if len(s) <= cutoff {
		for _, e := range s {
			if within[T](e, lo, hi, comp) {
				*out = append(*out, e)
			}
		}
		return
	}

	axis := level % s[0].Dim()
	p := findPivotForQuery(s)
	pivot := s[p]

	if within[T](pivot, lo, hi, comp) {
		*out = append(*out, pivot)
	}
	if !comp(pivot.Axis(axis), lo.Axis(axis)) {
		rangeQueryLevel(s[:p], level+1, lo, hi, comp, cutoff, out)
	}
	if comp(pivot.Axis(axis), hi.Axis(axis)) {
		rangeQueryLevel(s[p+1:], level+1, lo, hi, comp, cutoff, out)
	}
}
