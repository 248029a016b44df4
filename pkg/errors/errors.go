// Package errors provides structured error handling for the sheet engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvariant indicates a broken internal invariant (a logic defect).
	KindInvariant
	// KindSeek indicates a jump that could not converge on its target.
	KindSeek
	// KindModel indicates a misbehaving item source.
	KindModel
	// KindConfig indicates an invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "invariant"
	case KindSeek:
		return "seek"
	case KindModel:
		return "model"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Severity distinguishes reported failures from recoverable warnings.
type Severity int

const (
	// SeverityError is the default severity.
	SeverityError Severity = iota
	// SeverityWarning marks conditions the engine recovered from on its own.
	SeverityWarning
)

// SheetError represents a structured error raised by the sheet engine.
type SheetError struct {
	// Op is the operation that failed (e.g., "axis.JumpStart").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Severity is SeverityError unless the engine recovered.
	Severity Severity
	// Axis names the axis ("rows", "columns") when known.
	Axis string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SheetError) Error() string {
	if e.Axis != "" {
		return fmt.Sprintf("%s [%s] axis=%s: %v", e.Op, e.Kind, e.Axis, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "axis.ensureVisible").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so that an
// InvariantError survives recovery.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// InvariantError is the panic value raised when the engine detects a state
// that cannot occur in correct operation.
type InvariantError struct {
	// Op is the operation that detected the violation.
	Op string
	// Detail describes the violated condition.
	Detail string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

// SeekError reports a jump that stopped before reaching its target.
type SeekError struct {
	// Index is the item the jump was aiming for.
	Index int
	// Phase is "coarse" or "fine".
	Phase string
	// Steps is the number of iterations performed.
	Steps int
	// Residual is the remaining pixel distance to the requested edge.
	Residual int
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("cannot seek to item %d: %s phase stalled after %d steps (residual %dpx)",
		e.Index, e.Phase, e.Steps, e.Residual)
}

// ErrorHandler receives errors reported by the sheet engine.
type ErrorHandler interface {
	// HandleError is called when an error or warning is reported.
	HandleError(err *SheetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
