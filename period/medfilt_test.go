package period

import (
	"testing"

	"github.com/cwbudde/algo-lightcurve/internal/testutil"
)

func TestMovingMedian_Interior(t *testing.T) {
	got := movingMedian([]float64{5, 1, 2, 3, 9}, 3)
	want := []float64{1, 2, 2, 3, 3}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestMovingMedian_ZeroPaddedEdges(t *testing.T) {
	// With window 5 the first position sees {0, 0, 1, 1, 1}.
	got := movingMedian([]float64{1, 1, 1, 1, 1}, 5)
	want := []float64{1, 1, 1, 1, 1}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	// A large positive baseline exposes the zero padding: the first
	// position of window 3 sees {0, 10, 10} whose median is 10, but with
	// window 5 it sees {0, 0, 10, 10, 10}, still 10.
	got = movingMedian([]float64{10, 10, 10}, 3)
	want = []float64{10, 10, 10}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestMovingMedian_SuppressesOutliers(t *testing.T) {
	x := []float64{1, 1, 1, 50, 1, 1, 1}

	got := movingMedian(x, 3)

	for i, v := range got {
		if v != 1 {
			t.Errorf("index %d: outlier leaked through median: %v", i, v)
		}
	}
}

func TestMovingMedian_PreservesInput(t *testing.T) {
	x := []float64{3, 1, 2}

	movingMedian(x, 3)

	if x[0] != 3 || x[1] != 1 || x[2] != 2 {
		t.Fatalf("input mutated: %v", x)
	}
}
