package kdtree

// AxisOps: per-axis primitives, parameterized by axis index i (spec §4.1).
// These are the leaves every other component builds on, so they stay free
// functions rather than a struct/interface — there is no state to carry
// between calls, only the axis index and a pair of points.

// diffAxis returns the signed difference a_i - b_i.
func diffAxis[T Ordered](a, b Point[T], i int) float64 {
	return float64(a.Axis(i)) - float64(b.Axis(i))
}

// distAxis returns |a_i - b_i|, the axial distance used for branch
// pruning in NN and k-NN.
func distAxis[T Ordered](a, b Point[T], i int) float64 {
	d := diffAxis(a, b, i)
	if d < 0 {
		return -d
	}
	return d
}

// nextAxis cycles to the following axis, wrapping at d.
func nextAxis(i, d int) int {
	return (i + 1) % d
}
