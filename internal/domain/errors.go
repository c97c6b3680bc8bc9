package domain

import (
	"errors"
	"fmt"
)

// Common domain errors surfaced by field comparisons, aggregation, and
// table access. All of them signal deterministic data or programming
// errors; none are transient.
var (
	// ErrNullArgument indicates that a required operand was absent.
	// It is raised at the operation boundary, before any dispatch.
	ErrNullArgument = errors.New("null argument")

	// ErrTypeMismatch indicates that an operand's concrete kind does not
	// match the kind the operation expects.
	ErrTypeMismatch = errors.New("field type mismatch")

	// ErrUncomparable indicates a comparison with no defined order, such
	// as a known field reverse-compared onto a missing-value marker.
	ErrUncomparable = errors.New("fields are uncomparable")

	// ErrInvalidValue indicates structurally incompatible values, such as
	// enumeration fields built over different element lists.
	ErrInvalidValue = errors.New("invalid value")

	// ErrIndexOutOfBounds indicates an object or attribute index outside
	// the table's range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// ComparisonError wraps a comparison failure with the operation name and
// the kinds of the two operands involved.
type ComparisonError struct {
	// Operation is the comparison being performed, e.g. "compareToEx".
	Operation string

	// ReceiverKind is the kind of the field the operation was invoked on.
	ReceiverKind FieldKind

	// ArgumentKind is the kind of the other operand.
	ArgumentKind FieldKind

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface for ComparisonError.
func (e *ComparisonError) Error() string {
	return fmt.Sprintf("comparison error: operation=%s, receiver=%s, argument=%s, err=%v",
		e.Operation, e.ReceiverKind, e.ArgumentKind, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is checks.
func (e *ComparisonError) Unwrap() error { return e.Err }

// NewComparisonError creates a ComparisonError with the given details.
func NewComparisonError(operation string, receiver, argument FieldKind, err error) *ComparisonError {
	return &ComparisonError{
		Operation:    operation,
		ReceiverKind: receiver,
		ArgumentKind: argument,
		Err:          err,
	}
}

// CalculationError wraps an aggregation failure with the dispatch pairing
// that produced it.
type CalculationError struct {
	// ReceiverKind is the kind of the first (dispatching) operand.
	ReceiverKind FieldKind

	// ArgumentKind is the kind of the second operand, if one was present.
	ArgumentKind FieldKind

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface for CalculationError.
func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation error: receiver=%s, argument=%s, err=%v",
		e.ReceiverKind, e.ArgumentKind, e.Err)
}

// Unwrap returns the underlying error.
func (e *CalculationError) Unwrap() error { return e.Err }

// NewCalculationError creates a CalculationError with the given details.
func NewCalculationError(receiver, argument FieldKind, err error) *CalculationError {
	return &CalculationError{
		ReceiverKind: receiver,
		ArgumentKind: argument,
		Err:          err,
	}
}

// IndexError reports an out-of-range object or attribute index together
// with the valid range that was violated.
type IndexError struct {
	// Kind names what was being indexed, "object" or "attribute".
	Kind string

	// Index is the offending index.
	Index int

	// Size is the number of valid indices.
	Size int
}

// Error implements the error interface for IndexError.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of bounds [0, %d)", e.Kind, e.Index, e.Size)
}

// Unwrap links IndexError to ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }
