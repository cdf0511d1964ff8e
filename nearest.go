package kdtree

import "math"

// NN (spec §4.9): kd_nearest_neighbor, exact 1-NN under Euclidean (L2)
// distance with axis-distance branch pruning. Requires s in k-d layout.

// NearestNeighbor returns the element of s closest to value under L2
// distance, its distance, and whether s was non-empty.
func NearestNeighbor[T Ordered, E Point[T]](s []E, value Point[T]) (result E, distance float64, ok bool) {
	return NearestNeighborComp(s, value, natural[T]())
}

// NearestNeighborComp is NearestNeighbor with a caller-supplied
// comparator, which must match the one s was built with.
func NearestNeighborComp[T Ordered, E Point[T]](s []E, value Point[T], comp Comparator[T]) (result E, distance float64, ok bool) {
	best, bestSq, found := nearestLevel(s, 0, value, comp)
	if !found {
		return best, 0, false
	}
	return best, math.Sqrt(bestSq), true
}

// nearestLevel returns the nearest element within s, its squared L2
// distance to value, and whether s was non-empty. Tracking the squared
// distance avoids a sqrt on every comparison, as in the teacher's
// EuclideanMetric.ReducedDistance (distance.go); only the final result
// at the top of NearestNeighborComp takes the square root.
func nearestLevel[T Ordered, E Point[T]](s []E, level int, value Point[T], comp Comparator[T]) (best E, bestSq float64, found bool) {
	if len(s) == 0 {
		var zero E
		return zero, math.Inf(1), false
	}
	if len(s) == 1 {
		return s[0], l2Squared(s[0], value), true
	}

	axis := level % s[0].Dim()
	p := findPivotForQuery(s)
	pivot := s[p]

	searchLeft := comp(value.Axis(axis), pivot.Axis(axis))
	var near, far []E
	if searchLeft {
		near, far = s[:p], s[p+1:]
	} else {
		near, far = s[p+1:], s[:p]
	}

	best, bestSq, found = nearestLevel(near, level+1, value, comp)

	if pivotSq := l2Squared(pivot, value); !found || pivotSq < bestSq {
		best, bestSq, found = pivot, pivotSq, true
	}

	// The far subtree can only hold a closer point if the axial
	// distance to the pivot boundary is itself less than the current
	// best — any point across the boundary is at least that far away
	// on axis alone (spec §4.9's pruning argument).
	axisDist := distAxis(value, pivot, axis)
	if axisDist*axisDist < bestSq {
		if farBest, farSq, farFound := nearestLevel(far, level+1, value, comp); farFound && farSq < bestSq {
			best, bestSq, found = farBest, farSq, true
		}
	}

	return best, bestSq, found
}
