// Package smooth implements the core of locally weighted scatterplot
// smoothing: at a query point it selects a bandwidth-sized neighborhood,
// weights the observations with a kernel of normalized distance, and
// fits a local linear model by solving the weighted normal equations.
//
// Two sibling entry points compose the same pattern at different
// dimensionalities. Lowess handles scalar predictors and returns
// (slope, intercept, weights); LowessND handles vector predictors of
// dimension M and returns (beta, distances) with beta of length M+1,
// intercept first.
//
// The two variants deliberately differ on a singular local system:
// LowessND recovers with an all-zero coefficient vector (a flat fit)
// and raises a warning, while Lowess propagates the failure as an
// error. Callers relying on either behavior should not expect the
// other.
//
// Every call is a pure function of its inputs, so concurrent callers
// may evaluate disjoint query points in parallel without
// synchronization.
package smooth
