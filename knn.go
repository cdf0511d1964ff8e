package kdtree

// KNN (spec §4.10): kd_nearest_neighbors, exact k-NN via a bounded
// max-heap keyed by L2 distance, with the same axis-distance pruning as
// NearestNeighbor.

// NearestNeighbors returns up to k elements of s nearest to value under
// L2 distance, in heap-extraction order: farthest first, i.e. by
// non-increasing distance. Returns an error if k <= 0.
func NearestNeighbors[T Ordered, E Point[T]](s []E, value Point[T], k int) ([]E, error) {
	return NearestNeighborsComp(s, value, k, natural[T]())
}

// NearestNeighborsComp is NearestNeighbors with a caller-supplied
// comparator, which must match the one s was built with.
func NearestNeighborsComp[T Ordered, E Point[T]](s []E, value Point[T], k int, comp Comparator[T]) ([]E, error) {
	if k <= 0 {
		return nil, errNonPositiveK(k)
	}
	q := NewBoundedHeap[E](k)
	knnLevel(s, 0, value, comp, q)
	return q.Drain(), nil
}

func knnLevel[T Ordered, E Point[T]](s []E, level int, value Point[T], comp Comparator[T], q *BoundedHeap[E]) {
	if len(s) == 0 {
		return
	}
	if len(s) == 1 {
		q.Add(l2(s[0], value), s[0])
		return
	}

	axis := level % s[0].Dim()
	p := findPivotForQuery(s)
	pivot := s[p]

	q.Add(l2(pivot, value), pivot)

	searchLeft := comp(value.Axis(axis), pivot.Axis(axis))
	var near, far []E
	if searchLeft {
		near, far = s[:p], s[p+1:]
	} else {
		near, far = s[p+1:], s[:p]
	}

	knnLevel(near, level+1, value, comp, q)

	if distAxis(value, pivot, axis) <= q.MaxKey() {
		knnLevel(far, level+1, value, comp, q)
	}
}
