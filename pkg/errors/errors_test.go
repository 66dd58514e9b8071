package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		exp     int
		got     int
		axis    int
		wantMsg string
	}{
		{
			name:    "row mismatch",
			op:      "Lowess",
			exp:     5,
			got:     4,
			axis:    0,
			wantMsg: "lowess: Lowess: dimension mismatch on axis 0 (rows). Expected 5, got 4",
		},
		{
			name:    "query dims mismatch",
			op:      "LowessND",
			exp:     2,
			got:     3,
			axis:    1,
			wantMsg: "lowess: LowessND: dimension mismatch on axis 1 (dims). Expected 2, got 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError(tt.op, tt.exp, tt.got, tt.axis)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// A stack trace is attached at construction.
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Error("Error should be castable to *DimensionError")
			}
		})
	}
}

func TestNewRankOutOfRangeError(t *testing.T) {
	err := NewRankOutOfRangeError("Lowess", 3, 3, 1.0)

	want := "lowess: Lowess: bandwidth rank 3 out of range for 3 observations (bandwidth 1); choose a smaller bandwidth fraction"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var rankErr *RankOutOfRangeError
	if !As(err, &rankErr) {
		t.Fatal("Error should be castable to *RankOutOfRangeError")
	}
	if rankErr.Rank != 3 || rankErr.N != 3 {
		t.Errorf("Expected rank 3 of 3, got rank %d of %d", rankErr.Rank, rankErr.N)
	}
}

func TestNewSingularSystemError(t *testing.T) {
	err := NewSingularSystemError("solveWeighted", 3, math.Inf(1))

	var singErr *SingularSystemError
	if !As(err, &singErr) {
		t.Fatal("Error should be castable to *SingularSystemError")
	}
	if singErr.Size != 3 {
		t.Errorf("Expected size 3, got %d", singErr.Size)
	}

	// Every SingularSystemError matches the sentinel.
	if !Is(err, ErrSingularSystem) {
		t.Error("Expected errors.Is(err, ErrSingularSystem) to hold")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("Lowess", "bandwidth must be in (0, 1]")

	want := "lowess: Lowess: bandwidth must be in (0, 1]"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(func(w error) {})

	warning := NewDegenerateBandwidthWarning("Lowess", 0.5, 2)
	Warn(warning)

	if captured == nil {
		t.Fatal("Expected warning to reach the handler")
	}
	var dbw *DegenerateBandwidthWarning
	if !As(captured, &dbw) {
		t.Error("Captured warning should be a *DegenerateBandwidthWarning")
	}
	if dbw.Rank != 2 {
		t.Errorf("Expected rank 2, got %d", dbw.Rank)
	}
}

func TestFlatFitWarning(t *testing.T) {
	cause := NewSingularSystemError("solveWeighted", 3, math.Inf(1))
	w := NewFlatFitWarning("LowessND", 2, cause)

	if !strings.Contains(w.Error(), "zero coefficients of length 3") {
		t.Errorf("Expected flat-fit message to name M+1 = 3, got %q", w.Error())
	}
	if !Is(w, ErrSingularSystem) {
		t.Error("FlatFitWarning should unwrap to the singular-system sentinel")
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("kernel_weights", []float64{0.1, 0.9, 1.0}); err != nil {
		t.Errorf("Expected no error for finite values, got %v", err)
	}

	err := CheckNumericalStability("kernel_weights", []float64{0.1, math.NaN()})
	if err == nil {
		t.Fatal("Expected error for NaN value")
	}
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Error("Error should be castable to *NumericalInstabilityError")
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(1, 0); got != 0 {
		t.Errorf("SafeDivide(1, 0) = %v, want 0", got)
	}
	if got := SafeDivide(6, 2); got != 3 {
		t.Errorf("SafeDivide(6, 2) = %v, want 3", got)
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("panicking_op", func() error {
		panic("boom")
	})
	if err == nil {
		t.Fatal("Expected error from recovered panic")
	}
	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Error("Error should be castable to *PanicError")
	}
	if panicErr.Operation != "panicking_op" {
		t.Errorf("Expected operation 'panicking_op', got %q", panicErr.Operation)
	}
}
