package record

import (
	"math"
	"testing"
)

func TestF32(t *testing.T) {
	if got := F32(1.0); got != 0x3F800000 {
		t.Errorf("F32(1.0) = %#x, want 0x3F800000", got)
	}
	if got := F32(-2.0); got != 0xC0000000 {
		t.Errorf("F32(-2.0) = %#x, want 0xC0000000", got)
	}
}

func TestF64NarrowsToFloat32(t *testing.T) {
	if got, want := F64(1.5), F32(1.5); got != want {
		t.Errorf("F64(1.5) = %#x, want %#x", got, want)
	}
	if got := F64(-3.5); got != math.Float32bits(-3.5) {
		t.Errorf("F64(-3.5) = %#x, want %#x", got, math.Float32bits(-3.5))
	}
}

func TestFloatRoundTripThroughMsg2(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	if err := e.Init(EnableAll, ModeRestart); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// The sign bit lands in bit 31 and rides the accumulator.
	a, b := F32(-3.5), F32(0.25)
	e.Msg2(16, a, b)
	_, _, data := decodeFixed(t, e.Words(), 0, 2, 10)
	if data[0] != a || data[1] != b {
		t.Fatalf("round trip = (%#x, %#x), want (%#x, %#x)", data[0], data[1], a, b)
	}
	if math.Float32frombits(data[0]) != -3.5 {
		t.Fatalf("decoded value = %v, want -3.5", math.Float32frombits(data[0]))
	}
}
