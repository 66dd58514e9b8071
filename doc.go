// Package lowess provides locally weighted scatterplot smoothing
// (LOWESS/LOESS) primitives for Go, designed for exploratory data
// analysis and trend-curve estimation over noisy scatter data.
//
// At a query point the library fits a weighted least-squares polynomial
// of degree one to nearby observations, with weights decaying by
// distance under a compactly supported kernel, and returns the fitted
// local coefficients. Both scalar (1-D) and vector (N-D) predictors are
// supported.
//
// # Features
//
// - Local linear fits via weighted normal equations on gonum matrices
// - Bandwidth-based neighborhood sizing with rank-selected radius
// - Pluggable kernel functions (tricube default) in the kernel package
// - Robust error handling with structured, stack-traced error types
// - Referentially transparent calls, safe for concurrent use
//
// # Quick Start
//
// A single local fit on scalar data:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/lowess/smooth"
//	)
//
//	func main() {
//	    x := []float64{0, 1, 2, 3, 4}
//	    y := []float64{0, 1, 2, 3, 4}
//
//	    slope, intercept, _, err := smooth.Lowess(2.0, x, y, smooth.WithBandwidth(0.8))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("local fit: y = %.3f*x + %.3f\n", slope, intercept)
//	}
//
// Smoothing a whole curve is a matter of calling either variant once per
// query point; calls are independent and side-effect free, so callers
// may fan out over query points from a worker pool without
// synchronization.
package lowess
