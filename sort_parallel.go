package kdtree

import "golang.org/x/sync/errgroup"

// SortParallel builds the k-d layout using depth-limited fork/join over
// disjoint subranges (spec §4.5, kd_sort_threaded). Identical to Sort
// except that, while 2^depth <= MaxThreads, the right half is handed to a
// goroutine and the left half continues on the calling goroutine; the two
// are joined before returning. Because the halves are disjoint slices of
// the same backing array (selectNth has already partitioned them), no
// locking is required — only the join is a synchronization point, as
// spec §5 requires.
//
// Grounded in the same disjoint-range fan-out idiom as the teacher's
// ComputePairwiseDistancesParallel (parallel.go), but using
// golang.org/x/sync/errgroup for the recursive fork/join instead of a
// flat sync.WaitGroup, since the fork here is depth-bounded and
// recursive rather than a single flat split.
func SortParallel[T Ordered, E Point[T]](s []E, opts SortParallelOptions) {
	SortParallelComp(s, natural[T](), opts)
}

// SortParallelComp is SortParallel with a caller-supplied comparator.
func SortParallelComp[T Ordered, E Point[T]](s []E, comp Comparator[T], opts SortParallelOptions) {
	opts = opts.applyDefaults()
	sortParallelLevel(s, 0, 1, opts.MaxThreads, comp)
}

func sortParallelLevel[T Ordered, E Point[T]](s []E, level, depth, maxThreads int, comp Comparator[T]) {
	if len(s) <= 1 {
		return
	}
	axis := level % s[0].Dim()
	less := func(a, b E) bool { return kdLess[T](a, b, axis, comp) }

	p := middleOf(len(s))
	selectNth(s, p, less)

	left, right := s[:p], s[p+1:]

	if (1 << uint(depth)) <= maxThreads {
		var g errgroup.Group
		g.Go(func() error {
			sortParallelLevel(right, level+1, depth+1, maxThreads, comp)
			return nil
		})
		sortParallelLevel(left, level+1, depth+1, maxThreads, comp)
		g.Wait() //nolint:errcheck // sortParallelLevel never returns an error
		return
	}

	sortLevel(left, level+1, comp)
	sortLevel(right, level+1, comp)
}
