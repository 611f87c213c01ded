// Package prescan structured error types for scan failure reporting
package prescan

import (
	"fmt"
)

// ErrorType represents categories of scan errors
type ErrorType int

const (
	// Invalid argument errors (bad lengths, nil slices)
	ErrTypeInvalidArg ErrorType = iota
	// Empty input errors
	ErrTypeEmptyInput
	// Aliasing violations between input and output buffers
	ErrTypeAliasing
	// Worker execution errors
	ErrTypeWorker
	// Execution environment errors (group limits, unknown strategy)
	ErrTypeExecution
)

// ScanError represents a structured error with context
type ScanError struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context (e.g. worker index)
}

// Error implements the error interface
func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prescan %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("prescan %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *ScanError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeEmptyInput:
		return "EmptyInput"
	case ErrTypeAliasing:
		return "Aliasing"
	case ErrTypeWorker:
		return "Worker"
	case ErrTypeExecution:
		return "Execution"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewEmptyInputError creates an empty-input error
func NewEmptyInputError(op string) error {
	return &ScanError{
		Type:    ErrTypeEmptyInput,
		Op:      op,
		Message: "input length must be at least 1",
	}
}

// NewLengthMismatchError creates an input/output length mismatch error
func NewLengthMismatchError(op string, inLen, outLen int) error {
	return &ScanError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: fmt.Sprintf("output length %d does not match input length %d", outLen, inLen),
	}
}

// NewAliasingError creates an aliasing violation error
func NewAliasingError(op string) error {
	return &ScanError{
		Type:    ErrTypeAliasing,
		Op:      op,
		Message: "input and output must not share storage",
	}
}

// NewWorkerError aggregates a failed worker's error with its index
func NewWorkerError(op string, worker int, err error) error {
	return &ScanError{
		Type:    ErrTypeWorker,
		Op:      op,
		Message: fmt.Sprintf("worker %d failed", worker),
		Err:     err,
		Context: worker,
	}
}

// NewExecutionError creates an execution error
func NewExecutionError(op string, message string, err error) error {
	return &ScanError{
		Type:    ErrTypeExecution,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Common pre-defined errors

var (
	// ErrUnknownStrategy indicates an unrecognized strategy tag
	ErrUnknownStrategy = NewExecutionError("Scan", "unknown strategy", nil)
)

// IsEmptyInputError checks if an error is an empty-input error
func IsEmptyInputError(err error) bool {
	if e, ok := err.(*ScanError); ok {
		return e.Type == ErrTypeEmptyInput
	}
	return false
}

// IsLengthMismatchError checks if an error is a length mismatch error
func IsLengthMismatchError(err error) bool {
	if e, ok := err.(*ScanError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsAliasingError checks if an error is an aliasing violation
func IsAliasingError(err error) bool {
	if e, ok := err.(*ScanError); ok {
		return e.Type == ErrTypeAliasing
	}
	return false
}

// IsWorkerError checks if an error is a worker failure
func IsWorkerError(err error) bool {
	if e, ok := err.(*ScanError); ok {
		return e.Type == ErrTypeWorker
	}
	return false
}
