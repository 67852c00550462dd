package breakeven

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultConstraints(t *testing.T) {
	c := DefaultConstraints(true, false)

	if !c.IsMetroCity {
		t.Error("Expected IsMetroCity to be carried through")
	}

	if c.PFIncluded {
		t.Error("Expected PFIncluded to be carried through")
	}

	if c.MinGross == nil {
		t.Fatal("Expected MinGross to be set")
	}
	if !c.MinGross.Equal(decimal.Zero) {
		t.Errorf("Expected MinGross 0, got %s", c.MinGross.String())
	}

	if c.MaxGross == nil {
		t.Fatal("Expected MaxGross to be set")
	}
	expectedMax := decimal.NewFromInt(100000000)
	if !c.MaxGross.Equal(expectedMax) {
		t.Errorf("Expected MaxGross 100000000, got %s", c.MaxGross.String())
	}
}

func TestConstraints_Validate_NegativeMin(t *testing.T) {
	minGross := decimal.NewFromInt(-1)

	c := Constraints{
		MinGross: &minGross,
	}

	err := c.Validate()
	if err == nil {
		t.Error("Expected error for negative min gross")
	}

	if _, ok := err.(*CrossoverError); !ok {
		t.Errorf("Expected CrossoverError, got %T", err)
	}
}

func TestConstraints_Validate_GrossRange(t *testing.T) {
	minGross := decimal.NewFromInt(2000000)
	maxGross := decimal.NewFromInt(1000000) // Below min

	c := Constraints{
		MinGross: &minGross,
		MaxGross: &maxGross,
	}

	err := c.Validate()
	if err == nil {
		t.Error("Expected error for inverted gross range")
	}

	// A degenerate range is rejected too
	maxGross = minGross
	err = c.Validate()
	if err == nil {
		t.Error("Expected error for empty gross range")
	}
}

func TestConstraints_Validate_Valid(t *testing.T) {
	minGross := decimal.NewFromInt(500000)
	maxGross := decimal.NewFromInt(10000000)

	c := Constraints{
		MinGross:    &minGross,
		MaxGross:    &maxGross,
		IsMetroCity: true,
		PFIncluded:  true,
	}

	err := c.Validate()
	if err != nil {
		t.Errorf("Expected no error for valid constraints, got: %v", err)
	}
}

func TestDefaultSolverOptions(t *testing.T) {
	opts := DefaultSolverOptions()

	if opts.ScanPoints != 200 {
		t.Errorf("Expected scan points 200, got %d", opts.ScanPoints)
	}

	expectedTol := decimal.NewFromInt(1)
	if !opts.Tolerance.Equal(expectedTol) {
		t.Errorf("Expected tolerance 1, got %s", opts.Tolerance.String())
	}

	if opts.MaxIterations != 64 {
		t.Errorf("Expected max iterations 64, got %d", opts.MaxIterations)
	}
}

func TestCrossoverError(t *testing.T) {
	// Test error without cause
	err := &CrossoverError{
		Operation: "test_op",
		Message:   "test message",
	}

	expected := "test_op: test message"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}

	// Test error with cause
	causeErr := &CrossoverError{
		Operation: "cause_op",
		Message:   "cause message",
	}

	err = &CrossoverError{
		Operation: "test_op",
		Message:   "test message",
		Cause:     causeErr,
	}

	expectedWithCause := "test_op: test message: cause_op: cause message"
	if err.Error() != expectedWithCause {
		t.Errorf("Expected error message '%s', got '%s'", expectedWithCause, err.Error())
	}

	// Test unwrap
	if err.Unwrap() != causeErr {
		t.Error("Unwrap() should return the cause error")
	}
}
