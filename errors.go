package kdtree

import "fmt"

// The library otherwise follows the precondition-contract error model of
// spec §7: invalid inputs are the caller's responsibility and the hot
// recursive paths never check them. The one entry point with a cheap,
// worth-stating precondition (NearestNeighbors/NearestNeighborsComp's k)
// validates it once, building its error with the helper below using the
// same "kdtree: " message-prefix convention the teacher uses for
// "hdbscan: " in algorithm.go and hdbscan.go.

func errNonPositiveK(k int) error {
	return fmt.Errorf("kdtree: k must be positive, got %d", k)
}
