// Package errors provides structured error types for the tracebuf library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The recording hot path never constructs errors; this package
// serves configuration validation, lifecycle setup and snapshot parsing.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindOutOfRange).
//		Param("FmtIDBits").
//		Detail("must be between 9 and 16, got %d", bits).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseConfig, "TimestampShift", v, 1, 16)
//	err := errors.Incompatible(errors.PhaseInit, "stored fingerprint differs")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
