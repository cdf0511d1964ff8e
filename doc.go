// Package kdtree implements a header-only-style, in-place k-dimensional
// tree: sort, verify, range search, box query, nearest-neighbor, and
// k-nearest-neighbors over a caller-owned slice of fixed-arity points,
// using only O(1) auxiliary storage beyond recursion (plus a bounded
// heap for k-NN).
//
// Unlike a pointer-based k-d tree, there is no separate tree structure:
// Sort rearranges the slice in place so that element order itself
// encodes the tree, cycling the comparison axis by recursion depth. Every
// query (RangeQuery, NearestNeighbor, NearestNeighbors, LowerBound, ...)
// re-derives the same pivot the sort used and descends accordingly, so
// a slice stays queryable as long as nothing mutates it between Sort and
// the query.
//
// Basic usage:
//
//	points := []kdtree.Coord[float64]{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}
//	kdtree.Sort(points)
//	nearest, dist, ok := kdtree.NearestNeighbor[float64](points, kdtree.Coord[float64]{9, 2})
//
// For large slices, SortParallel forks across goroutines down to a
// configurable depth:
//
//	kdtree.SortParallel(points, kdtree.DefaultSortParallelOptions())
//
// Points carrying a payload use Pair instead of a bare Coord, so the
// payload moves for free whenever Sort swaps two elements:
//
//	pairs := []kdtree.Pair[float64, string]{
//		{Key: kdtree.Coord[float64]{2, 3}, Value: "a"},
//		{Key: kdtree.Coord[float64]{5, 4}, Value: "b"},
//	}
//	kdtree.Sort(pairs)
package kdtree
