package smooth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lowess/pkg/errors"
	"github.com/YuminosukeSato/lowess/pkg/log"
)

// Lowess performs locally weighted linear regression at a scalar query
// point. It fits y ≈ intercept + slope*x by weighted least squares over
// the neighborhood selected by the bandwidth fraction (default 2/3,
// tricube kernel), and returns the fitted slope, intercept and the
// per-observation weight vector.
//
// The 2×2 system is solved directly; a singular system (fewer than two
// distinct x-values carrying weight) is a fatal SingularSystemError,
// unlike LowessND which falls back to a flat fit.
func Lowess(xStar float64, x, y []float64, opts ...Option) (slope, intercept float64, weights []float64, err error) {
	const op = "Lowess"

	cfg := newConfig(opts)

	n := len(x)
	if n == 0 {
		return 0, 0, nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if len(y) != n {
		return 0, 0, nil, errors.NewDimensionError(op, n, len(y), 0)
	}
	if err := validateConfig(op, cfg); err != nil {
		return 0, 0, nil, err
	}

	dist := distances1D(xStar, x)
	w, _, err := neighborhoodWeights(op, dist, cfg)
	if err != nil {
		return 0, 0, nil, err
	}

	// Inlined 2×2 weighted normal equations:
	//   [Σw    Σwx ] [intercept]   [Σwy ]
	//   [Σwx   Σwx²] [slope    ] = [Σwxy]
	var sw, swx, swxx, swy, swxy float64
	for i := 0; i < n; i++ {
		sw += w[i]
		swx += w[i] * x[i]
		swxx += w[i] * x[i] * x[i]
		swy += w[i] * y[i]
		swxy += w[i] * x[i] * y[i]
	}

	a := mat.NewSymDense(2, []float64{sw, swx, swx, swxx})
	b := mat.NewVecDense(2, []float64{swy, swxy})

	beta, err := solveSystem(op, a, b)
	if err != nil {
		return 0, 0, nil, err
	}

	return beta[1], beta[0], w, nil
}

// LowessND performs locally weighted linear regression at a vector
// query point. x is an n×m matrix whose rows are observations; xStar
// must have length m. It returns beta of length m+1 (intercept first,
// then one slope per predictor dimension) and the Euclidean distance
// vector, which callers may reuse for diagnostics.
//
// If the weighted normal equations are singular — for example when all
// weighted neighbors are coincident or collinear — the fit assumes a
// horizontal plane: beta is all zeros of length m+1, a FlatFitWarning
// is raised through the errors package, and no error is returned. Any
// non-singular failure is returned as an error.
func LowessND(xStar []float64, x mat.Matrix, y []float64, opts ...Option) (beta, dist []float64, err error) {
	const op = "LowessND"

	cfg := newConfig(opts)

	n, m := x.Dims()
	if n == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if len(xStar) != m {
		return nil, nil, errors.NewDimensionError(op, m, len(xStar), 1)
	}
	if len(y) != n {
		return nil, nil, errors.NewDimensionError(op, n, len(y), 0)
	}
	if err := validateConfig(op, cfg); err != nil {
		return nil, nil, err
	}

	dist = distancesND(xStar, x)
	w, _, err := neighborhoodWeights(op, dist, cfg)
	if err != nil {
		return nil, nil, err
	}

	beta, err = solveWeighted(op, x, y, w)
	if err != nil {
		var singErr *errors.SingularSystemError
		if errors.As(err, &singErr) {
			// Flat-line policy: a singular local system yields zero
			// coefficients, sized m+1 to match beta's shape.
			errors.Warn(errors.NewFlatFitWarning(op, m, err))
			log.GetLoggerWithName("smooth.lowess").Warn("singular weighted system, assuming flat fit",
				log.OperationKey, log.OperationLowessND,
				log.SamplesKey, n,
				log.DimsKey, m,
				log.ConditionKey, singErr.Condition,
				log.FallbackKey, true,
			)
			return make([]float64, m+1), dist, nil
		}
		return nil, nil, err
	}

	return beta, dist, nil
}

func validateConfig(op string, cfg config) error {
	if cfg.kernel == nil {
		return errors.NewValueError(op, "kernel function must not be nil")
	}
	if cfg.bandwidth <= 0 || cfg.bandwidth > 1 {
		return errors.NewValueError(op, "bandwidth must be in (0, 1]")
	}
	return nil
}
