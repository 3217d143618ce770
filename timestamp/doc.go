// Package timestamp provides TimeSource implementations for the recording
// engine.
//
//	Monotonic  wraps the runtime monotonic clock; nanosecond resolution,
//	           full 32-bit counter. The general-purpose default.
//	Counter    a manually advanced counter for tests and deterministic
//	           replay of rollover scenarios.
//	Zero       always reads zero; for builds that trade timestamps for
//	           the last few cycles of overhead.
//
// Sources narrower than 32 bits (Counter supports any width) exercise the
// engine's long-timestamp rollover tracking; see record.LongTimestamp.
package timestamp
