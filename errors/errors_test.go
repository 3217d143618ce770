package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindOutOfRange,
				Param:  "FmtIDBits",
				Detail: "value 20 outside [9, 16]",
			},
			contains: []string{"[config]", "out_of_range", "FmtIDBits", "value 20"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseInit,
				Kind:  KindIncompatible,
			},
			contains: []string{"[init]", "incompatible"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseInit,
				Kind:   KindTimeSource,
				Detail: "time source initialization failed",
				Cause:  errors.New("counter unavailable"),
			},
			contains: []string{"[init]", "time_source", "caused by", "counter unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseInit,
		Kind:  KindTimeSource,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not match the cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := OutOfRange(PhaseConfig, "TimestampShift", 20, 1, 16)

	if !errors.Is(err, &Error{Phase: PhaseConfig}) {
		t.Error("phase wildcard match failed")
	}
	if !errors.Is(err, &Error{Kind: KindOutOfRange}) {
		t.Error("kind wildcard match failed")
	}
	if !errors.Is(err, &Error{Phase: PhaseConfig, Kind: KindOutOfRange, Param: "TimestampShift"}) {
		t.Error("exact match failed")
	}
	if errors.Is(err, &Error{Phase: PhaseSnapshot}) {
		t.Error("mismatched phase should not match")
	}
	if errors.Is(err, &Error{Param: "FmtIDBits"}) {
		t.Error("mismatched param should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("inner")
	err := New(PhaseSnapshot, KindTruncated).
		Param("buffer").
		Value(12).
		Detail("snapshot shorter than header (%d bytes)", 12).
		Cause(cause).
		Build()

	if err.Phase != PhaseSnapshot || err.Kind != KindTruncated {
		t.Errorf("builder lost phase/kind: %+v", err)
	}
	if err.Param != "buffer" {
		t.Errorf("Param = %q, want buffer", err.Param)
	}
	if err.Value != 12 {
		t.Errorf("Value = %v, want 12", err.Value)
	}
	if !strings.Contains(err.Detail, "12 bytes") {
		t.Errorf("Detail not formatted: %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}
