// Package log defines standard attribute keys for smoothing operations.
//
// Using these keys consistently enables structured log analysis and
// filtering across the library. Keys follow a hierarchical naming
// convention (e.g. "data.samples", "fit.bandwidth").

package log

// Operation context
// These attributes identify the component and operation being performed.
const (
	// OperationKey specifies the smoothing operation being performed.
	// Standard values: "lowess", "lowess_nd", "kernel_weights"
	OperationKey = "op.name"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "smooth", "kernel"
	ComponentKey = "op.component"
)

// Data shape and characteristics
const (
	// SamplesKey indicates the number of observations in the dataset.
	SamplesKey = "data.samples"

	// DimsKey indicates the predictor dimensionality M. It is 1 for
	// the scalar variant.
	DimsKey = "data.dims"
)

// Local fit diagnostics
// These attributes describe the neighborhood and solve of one query.
const (
	// BandwidthKey records the bandwidth fraction in (0, 1].
	BandwidthKey = "fit.bandwidth"

	// RankKey records the bandwidth rank ceil(f*n) used to select the
	// neighborhood radius from the sorted distance vector.
	RankKey = "fit.rank"

	// RadiusKey records the selected neighborhood radius h.
	RadiusKey = "fit.radius"

	// SupportKey records the number of observations with nonzero weight.
	SupportKey = "fit.support"

	// ConditionKey records the condition estimate reported by the
	// linear solver for the weighted normal equations.
	ConditionKey = "fit.condition"

	// FallbackKey marks a fit that returned the flat-line fallback.
	FallbackKey = "fit.fallback"
)

// Performance metrics
const (
	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and warning context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "DimensionError", "RankOutOfRangeError", "SingularSystemError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
const (
	OperationLowess        = "lowess"
	OperationLowessND      = "lowess_nd"
	OperationKernelWeights = "kernel_weights"
)
