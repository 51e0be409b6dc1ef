package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed marks input rejected before any network call.
	ErrValidationFailed = errors.New("validation failed")
	// ErrNetworkFailed marks an unreachable route service or a non-success directory/history/create call.
	ErrNetworkFailed = errors.New("network failed")
	// ErrOptimizationFailed marks a failed optimize call.
	ErrOptimizationFailed = errors.New("optimization failed")
)

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }

// NetworkError wraps a failed route-service call other than optimize.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failed: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Is(target error) bool { return target == ErrNetworkFailed }

func (e *NetworkError) Unwrap() error { return e.Err }

// OptimizationError carries the attempted (start, end, algorithm) triple.
type OptimizationError struct {
	Start     string
	End       string
	Algorithm Algorithm
	Err       error
}

func (e *OptimizationError) Error() string {
	return fmt.Sprintf(
		"optimization failed: start=%q end=%q algorithm=%s: %v",
		e.Start, e.End, e.Algorithm, e.Err,
	)
}

func (e *OptimizationError) Is(target error) bool { return target == ErrOptimizationFailed }

func (e *OptimizationError) Unwrap() error { return e.Err }
