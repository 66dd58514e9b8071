package smooth

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lowess/kernel"
	"github.com/YuminosukeSato/lowess/pkg/errors"
)

func TestDistances1D(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	dist := distances1D(2, x)

	want := []float64{2, 1, 0, 1, 2}
	for i := range want {
		if dist[i] != want[i] {
			t.Errorf("dist[%d] = %v, want %v", i, dist[i], want[i])
		}
	}
}

func TestDistancesND(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		0, 0,
		3, 4,
		1, 1,
	})
	dist := distancesND([]float64{0, 0}, x)

	want := []float64{0, 5, math.Sqrt2}
	for i := range want {
		if math.Abs(dist[i]-want[i]) > 1e-15 {
			t.Errorf("dist[%d] = %v, want %v", i, dist[i], want[i])
		}
	}
}

func TestNeighborhoodWeights_SupportProperty(t *testing.T) {
	// Distances [0,1,1,2,2] with bandwidth 0.6: rank 3, radius 2.
	// Tricube gives its maximum at distance zero and exactly zero at
	// distance >= radius.
	dist := []float64{2, 1, 0, 1, 2}
	cfg := config{bandwidth: 0.6, kernel: kernel.Tricube}

	w, h, err := neighborhoodWeights("test", dist, cfg)
	if err != nil {
		t.Fatalf("neighborhoodWeights failed: %v", err)
	}
	if h != 2 {
		t.Errorf("radius = %v, want 2", h)
	}
	if w[2] != 1 {
		t.Errorf("weight at distance 0 = %v, want kernel maximum 1", w[2])
	}
	if w[0] != 0 || w[4] != 0 {
		t.Errorf("weights at the radius = (%v, %v), want exactly zero", w[0], w[4])
	}
	// No normalization: weights are raw kernel values.
	if w[1] != kernel.Tricube(0.5) {
		t.Errorf("weight[1] = %v, want %v", w[1], kernel.Tricube(0.5))
	}
}

func TestNeighborhoodWeights_RankBoundary(t *testing.T) {
	// The rank is an index into the sorted distance vector: the radius
	// is the boundary distance of the nearest rank+1 points. With n=5
	// and bandwidth 0.4, the rank is ceil(2.0) = 2 and the radius is
	// the third smallest distance.
	dist := []float64{4, 3, 0, 1, 2}
	cfg := config{bandwidth: 0.4, kernel: kernel.Tricube}

	_, h, err := neighborhoodWeights("test", dist, cfg)
	if err != nil {
		t.Fatalf("neighborhoodWeights failed: %v", err)
	}
	if h != 2 {
		t.Errorf("radius = %v, want third smallest distance 2", h)
	}
}

func TestNeighborhoodWeights_RankOutOfRange(t *testing.T) {
	dist := []float64{0, 1, 2}
	cfg := config{bandwidth: 1.0, kernel: kernel.Tricube}

	_, _, err := neighborhoodWeights("test", dist, cfg)
	if err == nil {
		t.Fatal("Expected rank-out-of-range error for bandwidth 1.0 with n=3")
	}
	var rankErr *errors.RankOutOfRangeError
	if !errors.As(err, &rankErr) {
		t.Fatalf("Expected *RankOutOfRangeError, got %T: %v", err, err)
	}
	if rankErr.Rank != 3 || rankErr.N != 3 {
		t.Errorf("Expected rank 3 of 3, got rank %d of %d", rankErr.Rank, rankErr.N)
	}
}

func TestNeighborhoodWeights_DegenerateBandwidthWarns(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(w error) {})

	// Radius zero: all distances vanish.
	dist := []float64{0, 0, 0}
	cfg := config{bandwidth: 0.5, kernel: kernel.Tricube}

	w, h, err := neighborhoodWeights("test", dist, cfg)
	if err != nil {
		t.Fatalf("neighborhoodWeights failed: %v", err)
	}
	if h != 0 {
		t.Errorf("radius = %v, want 0", h)
	}

	var warning *errors.DegenerateBandwidthWarning
	if !errors.As(captured, &warning) {
		t.Fatalf("Expected DegenerateBandwidthWarning, got %v", captured)
	}

	// The computation proceeds; tricube maps the non-finite normalized
	// distances to zero weight.
	for i, v := range w {
		if v != 0 {
			t.Errorf("weight[%d] = %v, want 0", i, v)
		}
	}
}

func TestCountSupport(t *testing.T) {
	if got := countSupport([]float64{0, 0.5, 1, 0}); got != 2 {
		t.Errorf("countSupport = %d, want 2", got)
	}
}
