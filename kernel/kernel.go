// Package kernel provides weighting functions of normalized distance for
// locally weighted regression, plus helpers that turn a kernel into a
// per-observation weight vector.
//
// A kernel maps a nonnegative normalized distance u = d/h to a
// nonnegative weight. The reference kernels here are compactly
// supported (zero for |u| >= 1) except Gaussian, and attain their
// maximum 1 at u = 0.
package kernel

import (
	"math"
)

// Func is a kernel function: a nonnegative weight of normalized
// distance. Implementations in this package return 0 for non-finite
// input, so observations at an undefined normalized distance (e.g.
// after a zero-radius neighborhood) receive no weight.
type Func func(u float64) float64

// Tricube is the reference default kernel,
// w(u) = (1-|u|^3)^3 for |u| < 1, else 0.
// It is continuous and smooth at the support boundary.
func Tricube(u float64) float64 {
	a := math.Abs(u)
	if a < 1 {
		c := 1 - a*a*a
		return c * c * c
	}
	return 0
}

// Epanechnikov is the parabolic kernel w(u) = 1 - u^2 for |u| < 1, else 0.
func Epanechnikov(u float64) float64 {
	a := math.Abs(u)
	if a < 1 {
		return 1 - a*a
	}
	return 0
}

// Triweight is w(u) = (1-u^2)^3 for |u| < 1, else 0.
func Triweight(u float64) float64 {
	a := math.Abs(u)
	if a < 1 {
		c := 1 - a*a
		return c * c * c
	}
	return 0
}

// Uniform is the boxcar kernel w(u) = 1 for |u| < 1, else 0.
func Uniform(u float64) float64 {
	if math.Abs(u) < 1 {
		return 1
	}
	return 0
}

// Gaussian is w(u) = exp(-u^2/2). It is not compactly supported: every
// observation receives a positive weight, with the usual scaling left
// to the bandwidth. NaN input yields NaN.
func Gaussian(u float64) float64 {
	return math.Exp(-0.5 * u * u)
}

// Map applies k elementwise to u, storing the weights in dst.
// If dst is nil a new slice is allocated; otherwise len(dst) must equal
// len(u). The filled slice is returned.
func Map(dst, u []float64, k Func) []float64 {
	if dst == nil {
		dst = make([]float64, len(u))
	}
	if len(dst) != len(u) {
		panic("kernel: slice length mismatch")
	}
	for i, v := range u {
		dst[i] = k(v)
	}
	return dst
}
