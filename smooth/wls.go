package smooth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lowess/core/parallel"
	"github.com/YuminosukeSato/lowess/pkg/errors"
)

// buildNormalEquations assembles the weighted normal equations
// (Xᵗ W X) beta = Xᵗ W y for the local linear model. The design matrix
// is the predictor matrix with a leading column of ones, so the system
// has order m+1 and A is symmetric by construction:
//
//	A[k,l] = Σ_i w_i X_ik X_il
//	b[k]   = Σ_i w_i y_i X_ik
func buildNormalEquations(x mat.Matrix, y, w []float64) (*mat.SymDense, *mat.VecDense) {
	n, m := x.Dims()
	p := m + 1

	// Extended design matrix access: column 0 is the intercept term.
	at := func(i, k int) float64 {
		if k == 0 {
			return 1
		}
		return x.At(i, k-1)
	}

	a := mat.NewSymDense(p, nil)
	b := mat.NewVecDense(p, nil)

	for k := 0; k < p; k++ {
		b.SetVec(k, parallel.SumWithThreshold(n, parallelThreshold, func(start, end int) float64 {
			var sum float64
			for i := start; i < end; i++ {
				sum += w[i] * y[i] * at(i, k)
			}
			return sum
		}))

		for l := k; l < p; l++ {
			a.SetSym(k, l, parallel.SumWithThreshold(n, parallelThreshold, func(start, end int) float64 {
				var sum float64
				for i := start; i < end; i++ {
					sum += w[i] * at(i, k) * at(i, l)
				}
				return sum
			}))
		}
	}

	return a, b
}

// solveSystem solves A beta = b and classifies the failure mode. A
// singular or near-singular system comes back as a SingularSystemError
// so callers can implement their fallback policy on genuine
// singularity only; any other failure (including recovered gonum
// panics from malformed shapes) is reported as-is.
func solveSystem(op string, a *mat.SymDense, b *mat.VecDense) ([]float64, error) {
	var beta mat.VecDense
	solveErr := errors.SafeExecute(op+".solve", func() error {
		return beta.SolveVec(a, b)
	})
	if solveErr != nil {
		var cond mat.Condition
		if errors.As(solveErr, &cond) {
			return nil, errors.NewSingularSystemError(op, b.Len(), float64(cond))
		}
		if errors.Is(solveErr, mat.ErrSingular) {
			return nil, errors.NewSingularSystemError(op, b.Len(), 0)
		}
		return nil, errors.Wrap(solveErr, op)
	}

	out := make([]float64, b.Len())
	for k := range out {
		out[k] = beta.AtVec(k)
	}
	return out, nil
}

// solveWeighted fits the local linear model for an n×m predictor
// matrix, returning beta of length m+1 with the intercept first.
func solveWeighted(op string, x mat.Matrix, y, w []float64) ([]float64, error) {
	n, _ := x.Dims()
	if len(y) != n {
		return nil, errors.NewDimensionError(op, n, len(y), 0)
	}
	if len(w) != n {
		return nil, errors.NewDimensionError(op, n, len(w), 0)
	}

	a, b := buildNormalEquations(x, y, w)
	return solveSystem(op, a, b)
}
