package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig   Phase = "config"   // configuration validation
	PhaseInit     Phase = "init"     // lifecycle initialization
	PhaseSnapshot Phase = "snapshot" // buffer export / fingerprint parsing
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfRange   Kind = "out_of_range"
	KindInvalidValue Kind = "invalid_value"
	KindIncompatible Kind = "incompatible"
	KindUnsupported  Kind = "unsupported"
	KindTruncated    Kind = "truncated"
	KindTimeSource   Kind = "time_source"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Param  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Param != "" {
		b.WriteString(" at ")
		b.WriteString(e.Param)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's phase and kind.
// Zero-valued fields of the target act as wildcards.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Param != "" && t.Param != e.Param {
		return false
	}
	return true
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Param names the configuration parameter or header field involved
func (b *Builder) Param(name string) *Builder {
	b.err.Param = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfRange creates a range violation error for a configuration parameter
func OutOfRange(phase Phase, param string, got, min, max uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Param:  param,
		Detail: fmt.Sprintf("value %d outside [%d, %d]", got, min, max),
		Value:  got,
	}
}

// InvalidValue creates an invalid value error
func InvalidValue(phase Phase, param, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidValue,
		Param:  param,
		Detail: detail,
	}
}

// Incompatible creates an incompatible configuration error
func Incompatible(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIncompatible,
		Detail: detail,
	}
}

// Unsupported creates an unsupported combination error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// TimeSource wraps a time-source initialization failure
func TimeSource(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTimeSource,
		Detail: "time source initialization failed",
		Cause:  cause,
	}
}
