// Package errors provides structured error reporting for shadow layouts.
//
// Widget code never fails on bad styling input. Instead it falls back to a
// default and reports what went wrong here, so the application decides how
// loudly to complain.
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
	// KindAttribute indicates a malformed styling attribute.
	KindAttribute
	// KindResource indicates a style resource that could not be loaded.
	KindResource
	// KindRender indicates a shadow rendering failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindResource:
		return "resource"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ShadowError represents a structured error in the shadow layout packages.
type ShadowError struct {
	// Op is the operation that failed (e.g., "attrs.Set.Dimension").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Attribute is the styling attribute name, if applicable.
	Attribute string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ShadowError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("%s [%s] attribute=%s: %v", e.Op, e.Kind, e.Attribute, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ShadowError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "layout.ShadowLayout.render").
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

// AttributeError represents a styling value that could not be parsed.
type AttributeError struct {
	// Name is the attribute name.
	Name string
	// Value is the raw attribute value.
	Value string
	// Expected describes the accepted syntax (e.g., "dimension").
	Expected string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *AttributeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q for %s: %v", e.Expected, e.Value, e.Name, e.Err)
	}
	return fmt.Sprintf("invalid %s %q for %s", e.Expected, e.Value, e.Name)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the shadow layout packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ShadowError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
