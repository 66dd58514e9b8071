package smooth

import (
	"context"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lowess/core/parallel"
	"github.com/YuminosukeSato/lowess/pkg/errors"
	"github.com/YuminosukeSato/lowess/pkg/log"
)

// Per-observation loops switch to the parallel helpers above this many
// rows, matching the point where goroutine overhead pays off.
const parallelThreshold = 1000

// distances1D fills the Euclidean distances |x_i - xStar| for scalar
// predictors.
func distances1D(xStar float64, x []float64) []float64 {
	dist := make([]float64, len(x))
	parallel.ParallelizeWithThreshold(len(x), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			dist[i] = math.Abs(x[i] - xStar)
		}
	})
	return dist
}

// distancesND fills the Euclidean distances ||x_i - xStar|| for the rows
// of an n×m predictor matrix.
func distancesND(xStar []float64, x mat.Matrix) []float64 {
	n, m := x.Dims()
	dist := make([]float64, n)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		row := make([]float64, m)
		for i := start; i < end; i++ {
			mat.Row(row, i, x)
			dist[i] = floats.Distance(xStar, row, 2)
		}
	})
	return dist
}

// neighborhoodWeights converts raw distances into kernel weights.
//
// The radius h is the distance at rank ceil(bandwidth*n) of the sorted
// distance vector: the boundary distance of the nearest rank+1 points,
// one more than the rank itself. That indexing is part of the contract;
// a rank of n or beyond is an error, never clamped.
//
// A radius of exactly zero (the query coincides with at least rank+1
// observations) raises a DegenerateBandwidthWarning and proceeds: the
// weights are then whatever the kernel returns for a non-finite
// normalized distance.
func neighborhoodWeights(op string, dist []float64, cfg config) ([]float64, float64, error) {
	n := len(dist)
	r := int(math.Ceil(cfg.bandwidth * float64(n)))
	if r >= n {
		return nil, 0, errors.NewRankOutOfRangeError(op, r, n, cfg.bandwidth)
	}

	sorted := make([]float64, n)
	copy(sorted, dist)
	sort.Float64s(sorted)
	h := sorted[r]

	if h == 0 {
		errors.Warn(errors.NewDegenerateBandwidthWarning(op, cfg.bandwidth, r))
	}

	w := make([]float64, n)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			w[i] = cfg.kernel(dist[i] / h)
		}
	})

	logger := log.GetLoggerWithName("smooth.neighborhood")
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("neighborhood selected",
			log.OperationKey, op,
			log.SamplesKey, n,
			log.BandwidthKey, cfg.bandwidth,
			log.RankKey, r,
			log.RadiusKey, h,
			log.SupportKey, countSupport(w),
		)
	}

	return w, h, nil
}

// countSupport counts the observations carrying nonzero weight.
func countSupport(w []float64) int {
	support := 0
	for _, v := range w {
		if v != 0 {
			support++
		}
	}
	return support
}
