package kdtree

import (
	"math/rand"
	"sort"
	"testing"
)

func TestNearestNeighbors_AgreesWithBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(41))
	s := randomCoords(r, 500, 3)
	Sort(s)

	for trial := 0; trial < 20; trial++ {
		q := Coord[float64]{r.Float64(), r.Float64(), r.Float64()}
		k := 1 + r.Intn(10)

		got, err := NearestNeighbors[float64](s, q, k)
		if err != nil {
			t.Fatalf("NearestNeighbors returned error: %v", err)
		}
		if len(got) != k {
			t.Fatalf("len(got) = %d, want %d", len(got), k)
		}

		wantDists := bruteForceKNearestDists(s, q, k)
		gotDists := make([]float64, len(got))
		for i, e := range got {
			gotDists[i] = l2(e, q)
		}
		sort.Float64s(gotDists)

		for i := range wantDists {
			if gotDists[i]-wantDists[i] > 1e-9 {
				t.Fatalf("trial %d: k-NN distance set mismatch at %d: got %v, want %v", trial, i, gotDists, wantDists)
			}
		}
	}
}

func bruteForceKNearestDists(s []Coord[float64], q Coord[float64], k int) []float64 {
	dists := make([]float64, len(s))
	for i, e := range s {
		dists[i] = l2(e, q)
	}
	sort.Float64s(dists)
	if k > len(dists) {
		k = len(dists)
	}
	return dists[:k]
}

func TestNearestNeighbors_NonPositiveKIsError(t *testing.T) {
	s := []Coord[float64]{{1, 1}}
	if _, err := NearestNeighbors[float64](s, Coord[float64]{0, 0}, 0); err == nil {
		t.Errorf("expected error for k=0")
	}
	if _, err := NearestNeighbors[float64](s, Coord[float64]{0, 0}, -3); err == nil {
		t.Errorf("expected error for k=-3")
	}
}

func TestNearestNeighbors_KGreaterThanLenReturnsAll(t *testing.T) {
	s := []Coord[float64]{{1, 1}, {2, 2}, {3, 3}}
	Sort(s)
	got, err := NearestNeighbors[float64](s, Coord[float64]{0, 0}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len(got) = %d, want 3 when k exceeds len(s)", len(got))
	}
}

func TestNearestNeighbors_EmptySliceReturnsEmpty(t *testing.T) {
	var empty []Coord[float64]
	got, err := NearestNeighbors[float64](empty, Coord[float64]{0, 0}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0 for empty input", len(got))
	}
}
