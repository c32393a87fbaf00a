// Package errors provides structured error handling for kolibri.
//
// Every failure in the frame pipeline is reported as a value. Allocation,
// drawing and style lookups return a [*KolibriError] whose Kind says how the
// caller is expected to recover; none of them is fatal to the frame.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindAllocationExhausted indicates the layout cursor could not fit a
	// requested rectangle into the remaining drawable area.
	KindAllocationExhausted
	// KindDrawPrimitiveFailed indicates the drawing sink rejected a primitive.
	KindDrawPrimitiveFailed
	// KindInvalidStyleContext indicates a widget context with no theme entry.
	KindInvalidStyleContext
	// KindConfig indicates an invalid configuration or theme file.
	KindConfig
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindAllocationExhausted:
		return "allocation_exhausted"
	case KindDrawPrimitiveFailed:
		return "draw_primitive_failed"
	case KindInvalidStyleContext:
		return "invalid_style_context"
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinels matched by [KolibriError.Is] for the corresponding kinds.
var (
	ErrAllocationExhausted = stderrors.New("allocation exhausted")
	ErrDrawPrimitiveFailed = stderrors.New("draw primitive failed")
	ErrInvalidStyleContext = stderrors.New("invalid style context")
)

// KolibriError represents a structured error in the widget pipeline.
type KolibriError struct {
	// Op is the operation that failed (e.g., "layout.Placer.Alloc").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the widget type involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *KolibriError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KolibriError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind, so that
// errors.Is(err, ErrAllocationExhausted) works without unwrapping by hand.
func (e *KolibriError) Is(target error) bool {
	switch target {
	case ErrAllocationExhausted:
		return e.Kind == KindAllocationExhausted
	case ErrDrawPrimitiveFailed:
		return e.Kind == KindDrawPrimitiveFailed
	case ErrInvalidStyleContext:
		return e.Kind == KindInvalidStyleContext
	}
	return false
}

// New builds a KolibriError stamped with the current time.
func New(op string, kind ErrorKind, err error) *KolibriError {
	return &KolibriError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of the first KolibriError in err's chain,
// or KindUnknown.
func KindOf(err error) ErrorKind {
	var ke *KolibriError
	if stderrors.As(err, &ke) {
		return ke.Kind
	}
	return KindUnknown
}

// Is and As re-export the standard library helpers so callers importing this
// package under its default name do not need a second import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.Add").
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

// ErrorHandler receives errors reported outside the normal return path,
// such as style fallbacks that do not fail the frame.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *KolibriError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
