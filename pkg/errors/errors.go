// Package errors provides error handling and the warning system for the
// lowess library. Errors are structured types carrying the failing
// operation and its numeric context, with stack traces attached via
// cockroachdb/errors and zerolog marshaling for structured logging.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("lowess-warning: %v\n", w)
	}
	// zerolog warn function, injected lazily to avoid an import cycle.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler installs the library-wide warning handler. Non-fatal
// conditions such as a degenerate bandwidth or a singular local system
// (N-D flat-line fallback) are reported through it.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. When set it
// takes precedence over the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning through the installed sink.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DegenerateBandwidthWarning is raised when the rank-selected
// neighborhood radius is exactly zero, i.e. the query point coincides
// with at least rank+1 observations. The kernel is then evaluated at a
// non-finite normalized distance and the resulting weights are whatever
// the kernel returns for NaN/Inf input; the computation proceeds.
type DegenerateBandwidthWarning struct {
	Op        string
	Bandwidth float64
	Rank      int
}

func (w *DegenerateBandwidthWarning) Error() string {
	return fmt.Sprintf("%s: neighborhood radius is zero at rank %d (bandwidth %g); weights are kernel values at a non-finite normalized distance",
		w.Op, w.Rank, w.Bandwidth)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DegenerateBandwidthWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Float64("bandwidth", w.Bandwidth).
		Int("rank", w.Rank).
		Str("type", "DegenerateBandwidthWarning")
}

// NewDegenerateBandwidthWarning creates a new DegenerateBandwidthWarning.
func NewDegenerateBandwidthWarning(op string, bandwidth float64, rank int) *DegenerateBandwidthWarning {
	return &DegenerateBandwidthWarning{Op: op, Bandwidth: bandwidth, Rank: rank}
}

// FlatFitWarning is raised when the N-D variant falls back to an
// all-zero coefficient vector because the weighted normal equations were
// singular. The fit it reports is a horizontal hyperplane at zero.
type FlatFitWarning struct {
	Op   string
	Dims int
	Err  error
}

func (w *FlatFitWarning) Error() string {
	return fmt.Sprintf("%s: singular weighted system, assuming flat fit (zero coefficients of length %d): %v",
		w.Op, w.Dims+1, w.Err)
}

func (w *FlatFitWarning) Unwrap() error {
	return w.Err
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *FlatFitWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("dims", w.Dims).
		AnErr("cause", w.Err).
		Str("type", "FlatFitWarning")
}

// NewFlatFitWarning creates a new FlatFitWarning.
func NewFlatFitWarning(op string, dims int, err error) *FlatFitWarning {
	return &FlatFitWarning{Op: op, Dims: dims, Err: err}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// DimensionError reports a shape mismatch between inputs: predictor,
// response and weight lengths must agree, and the query point's
// dimensionality must match the dataset's. Inputs are never broadcast
// or truncated to fit.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows/observations, 1 for columns/dimensions
}

func (e *DimensionError) Error() string {
	axisName := "dims"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("lowess: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "dims"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// RankOutOfRangeError reports that the bandwidth rank ceil(f*n) indexes
// past the end of the sorted distance vector. The bandwidth fraction
// must be small enough that ceil(f*n) < n; the rank is never clamped.
type RankOutOfRangeError struct {
	Op        string
	Rank      int
	N         int
	Bandwidth float64
}

func (e *RankOutOfRangeError) Error() string {
	return fmt.Sprintf("lowess: %s: bandwidth rank %d out of range for %d observations (bandwidth %g); choose a smaller bandwidth fraction",
		e.Op, e.Rank, e.N, e.Bandwidth)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *RankOutOfRangeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rank", e.Rank).
		Int("samples", e.N).
		Float64("bandwidth", e.Bandwidth).
		Str("type", "RankOutOfRangeError")
}

// NewRankOutOfRangeError creates a new RankOutOfRangeError with a stack trace.
func NewRankOutOfRangeError(op string, rank, n int, bandwidth float64) error {
	err := &RankOutOfRangeError{Op: op, Rank: rank, N: n, Bandwidth: bandwidth}
	return errors.WithStack(err)
}

// SingularSystemError reports that the weighted normal equations were
// singular or numerically degenerate, e.g. fewer than M+1 effectively
// weighted points or collinear predictors in the neighborhood. Condition
// carries the estimated condition number when the solver supplied one
// (+Inf for an exactly singular system).
type SingularSystemError struct {
	Op        string
	Size      int     // order of the normal-equations matrix (M+1)
	Condition float64 // estimated condition number, +Inf if exactly singular
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("lowess: %s: weighted normal equations of order %d are singular or near-singular (condition %g)",
		e.Op, e.Size, e.Condition)
}

func (e *SingularSystemError) Unwrap() error {
	return ErrSingularSystem
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *SingularSystemError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("size", e.Size).
		Float64("condition", e.Condition).
		Str("type", "SingularSystemError")
}

// NewSingularSystemError creates a new SingularSystemError with a stack trace.
func NewSingularSystemError(op string, size int, condition float64) error {
	err := &SingularSystemError{Op: op, Size: size, Condition: condition}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid, such as a
// bandwidth fraction outside (0, 1] or a nil kernel.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("lowess: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to the given target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an empty dataset is supplied.
	ErrEmptyData = New("empty data")

	// ErrSingularSystem is wrapped by every SingularSystemError, so
	// callers can classify the flat-line fallback with errors.Is.
	ErrSingularSystem = New("singular system")
)
