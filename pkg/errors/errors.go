// Package errors provides structured error handling for icon font views and
// state-list tables.
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
	// KindParsing indicates a selector document could not be parsed.
	KindParsing
	// KindInit indicates an initialization error, such as a missing typeface.
	KindInit
	// KindRender indicates a drawing error.
	KindRender
	// KindConfig indicates an invalid configuration file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error raised by an operation.
type Error struct {
	// Op is the operation that failed (e.g., "iconfont.Defaults.Typeface").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MalformedTableError reports a selector document that cannot produce a
// state-list table. Line and Column are 1-based; zero means unknown.
type MalformedTableError struct {
	// Source names the document (a file path or "<input>").
	Source string
	// Line is the line of the offending element.
	Line int
	// Column is the column of the offending element.
	Column int
	// Reason describes what is wrong.
	Reason string
	// Err is the underlying decoder error, if any.
	Err error
}

func (e *MalformedTableError) Error() string {
	src := e.Source
	if src == "" {
		src = "<input>"
	}
	pos := src
	if e.Line > 0 {
		pos = fmt.Sprintf("%s:%d:%d", src, e.Line, e.Column)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", pos, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", pos, e.Reason)
}

func (e *MalformedTableError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "iconfont.View.Draw").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
