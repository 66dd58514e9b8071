package kernel

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lowess/pkg/errors"
)

// This file implements the kernel-weight helper: two strategies for
// turning a dataset and a query point into a per-observation weight
// vector. Weights (radial) applies the kernel to the Euclidean distance
// from the query; WeightsNonRadial applies the kernel per axis and
// multiplies. Both scale by a rank-selected radius, the same rule the
// smoothing core uses: with n observations and bandwidth fraction f,
// the radius is the entry at index ceil(f*n) of the ascending distance
// vector, i.e. the boundary distance of the nearest ceil(f*n)+1 points.

// Weights computes radial kernel weights: w[i] = k(||x_i - query|| / h)
// with h the rank-selected Euclidean radius. data is an n×m matrix
// whose rows are observations; query must have length m and bandwidth
// must lie in (0, 1].
func Weights(query []float64, data mat.Matrix, k Func, bandwidth float64) ([]float64, error) {
	const op = "kernel.Weights"

	n, m, err := validate(op, query, data, k, bandwidth)
	if err != nil {
		return nil, err
	}

	dist := make([]float64, n)
	row := make([]float64, m)
	for i := 0; i < n; i++ {
		mat.Row(row, i, data)
		dist[i] = floats.Distance(query, row, 2)
	}

	h, err := rankRadius(op, dist, bandwidth)
	if err != nil {
		return nil, err
	}

	w := make([]float64, n)
	for i, d := range dist {
		w[i] = k(d / h)
	}
	return w, nil
}

// WeightsNonRadial computes per-axis product weights:
// w[i] = Π_j k(|x_ij - query_j| / h_j), where h_j is the rank-selected
// radius of axis j alone. Compared to Weights this stretches the
// neighborhood independently along each axis, so axes with different
// scales are normalized by their own spread rather than the joint
// Euclidean one.
func WeightsNonRadial(query []float64, data mat.Matrix, k Func, bandwidth float64) ([]float64, error) {
	const op = "kernel.WeightsNonRadial"

	n, m, err := validate(op, query, data, k, bandwidth)
	if err != nil {
		return nil, err
	}

	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	axisDist := make([]float64, n)
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			axisDist[i] = math.Abs(data.At(i, j) - query[j])
		}

		h, err := rankRadius(op, axisDist, bandwidth)
		if err != nil {
			return nil, err
		}

		for i := 0; i < n; i++ {
			w[i] *= k(axisDist[i] / h)
		}
	}
	return w, nil
}

func validate(op string, query []float64, data mat.Matrix, k Func, bandwidth float64) (n, m int, err error) {
	n, m = data.Dims()
	if n == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if len(query) != m {
		return 0, 0, errors.NewDimensionError(op, m, len(query), 1)
	}
	if k == nil {
		return 0, 0, errors.NewValueError(op, "kernel function must not be nil")
	}
	if bandwidth <= 0 || bandwidth > 1 {
		return 0, 0, errors.NewValueError(op, "bandwidth must be in (0, 1]")
	}
	return n, m, nil
}

// rankRadius returns dist sorted ascending at index ceil(bandwidth*n).
// The rank is an index, so it must be strictly less than n; it is never
// clamped.
func rankRadius(op string, dist []float64, bandwidth float64) (float64, error) {
	n := len(dist)
	r := int(math.Ceil(bandwidth * float64(n)))
	if r >= n {
		return 0, errors.NewRankOutOfRangeError(op, r, n, bandwidth)
	}

	sorted := make([]float64, n)
	copy(sorted, dist)
	sort.Float64s(sorted)
	return sorted[r], nil
}
